// Package pages holds the locator-driven interaction layer and the page objects built on it.
package pages

import (
	"context"
	"fmt"

	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
	"github.com/tebeka/selenium"
)

// strategies maps every locator kind to its WebDriver lookup strategy
var strategies = map[entities.LocatorKind]string{
	entities.LocatorID:        selenium.ByID,
	entities.LocatorName:      selenium.ByName,
	entities.LocatorClassName: selenium.ByClassName,
	entities.LocatorLinkText:  selenium.ByLinkText,
	entities.LocatorXPath:     selenium.ByXPATH,
	entities.LocatorCSS:       selenium.ByCSSSelector,
}

// BasePage resolves locators against a session and acts on the elements.
// Locators are resolved again on every call; element handles are never kept.
type BasePage struct {
	session  interfaces.Session
	redactor interfaces.Redactor
	logger   *logrus.Logger
}

// NewBasePage - creates an interaction layer over a session it does not own
func NewBasePage(session interfaces.Session, redactor interfaces.Redactor, logger *logrus.Logger) *BasePage {
	return &BasePage{
		session:  session,
		redactor: redactor,
		logger:   logger,
	}
}

// Element - resolves loc to the first matching element.
// An unknown kind fails before the session is called.
func (p *BasePage) Element(ctx context.Context, loc entities.Locator) (interfaces.Element, error) {
	strategy, ok := strategies[loc.Kind.Normalize()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", entities.ErrInvalidLocatorKind, loc.Kind)
	}

	element, err := p.session.FindElement(ctx, strategy, loc.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to locate %s: %w", loc, err)
	}
	return element, nil
}

// TypeInto - clicks the element, clears it and types text
func (p *BasePage) TypeInto(ctx context.Context, text string, loc entities.Locator) error {
	p.logger.WithFields(logrus.Fields{
		"locator": loc.String(),
		"text":    p.redactor.Mask(loc.Value, text),
	}).Info("Typing text")

	element, err := p.Element(ctx, loc)
	if err != nil {
		return err
	}

	if err := element.Click(); err != nil {
		return fmt.Errorf("failed to focus %s: %w", loc, err)
	}
	if err := element.Clear(); err != nil {
		return fmt.Errorf("failed to clear %s: %w", loc, err)
	}
	if err := element.SendKeys(text); err != nil {
		return fmt.Errorf("failed to type into %s: %w", loc, err)
	}
	return nil
}

// Click - clicks the element
func (p *BasePage) Click(ctx context.Context, loc entities.Locator) error {
	p.logger.Infof("Clicking on: %s", loc)

	element, err := p.Element(ctx, loc)
	if err != nil {
		return err
	}

	if err := element.Click(); err != nil {
		return fmt.Errorf("failed to click %s: %w", loc, err)
	}
	return nil
}

// IsDisplayed - reports whether the element is visible; a hidden element is not an error
func (p *BasePage) IsDisplayed(ctx context.Context, loc entities.Locator) (bool, error) {
	element, err := p.Element(ctx, loc)
	if err != nil {
		return false, err
	}

	visible, err := element.IsDisplayed()
	if err != nil {
		return false, fmt.Errorf("failed to check visibility of %s: %w", loc, err)
	}
	p.logger.Debugf("%s displayed: %t", loc, visible)
	return visible, nil
}

// Text - returns the rendered text of the element
func (p *BasePage) Text(ctx context.Context, loc entities.Locator) (string, error) {
	element, err := p.Element(ctx, loc)
	if err != nil {
		return "", err
	}

	text, err := element.Text()
	if err != nil {
		return "", fmt.Errorf("failed to read text of %s: %w", loc, err)
	}
	return text, nil
}

// Ensure BasePage implements Interactor interface
var _ interfaces.Interactor = (*BasePage)(nil)
