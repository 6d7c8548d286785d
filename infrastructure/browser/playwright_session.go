package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
	"github.com/tebeka/selenium"
)

// Playwright has no window maximize, the viewport is set to a full HD screen instead
const (
	maximizedWidth  = 1920
	maximizedHeight = 1080
)

type PlaywrightSession struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
	logger  *logrus.Logger
}

// NewPlaywrightSession - launches browser through Playwright and opens a page
func NewPlaywrightSession(browser entities.Browser, opts Options, logger *logrus.Logger) (*PlaywrightSession, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	launchOptions := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	}

	browserType := pw.Chromium
	switch browser {
	case entities.BrowserFirefox:
		browserType = pw.Firefox
	case entities.BrowserEdge:
		launchOptions.Channel = playwright.String("msedge")
	}

	b, err := browserType.Launch(launchOptions)
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	bctx, err := b.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  1280,
			Height: 720,
		},
		IgnoreHttpsErrors: playwright.Bool(true),
	})
	if err != nil {
		b.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	page, err := bctx.NewPage()
	if err != nil {
		b.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	logger.Infof("Started %s session through playwright", browser)
	return &PlaywrightSession{
		pw:      pw,
		browser: b,
		context: bctx,
		page:    page,
		logger:  logger,
	}, nil
}

// selectorFor - translates a WebDriver strategy into a Playwright selector
func selectorFor(by string, value string) (string, error) {
	switch by {
	case selenium.ByID:
		return fmt.Sprintf("[id=%s]", quote(value)), nil
	case selenium.ByName:
		return fmt.Sprintf("[name=%s]", quote(value)), nil
	case selenium.ByClassName:
		return fmt.Sprintf("[class~=%s]", quote(value)), nil
	case selenium.ByLinkText:
		return fmt.Sprintf("a:text-is(%s)", quote(value)), nil
	case selenium.ByXPATH:
		return "xpath=" + value, nil
	case selenium.ByCSSSelector:
		return "css=" + value, nil
	default:
		return "", fmt.Errorf("%w: unsupported strategy %q", entities.ErrInvalidLocatorKind, by)
	}
}

// quote - wraps value in double quotes for CSS attribute and text selectors
func quote(value string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(value) + `"`
}

// FindElement - returns the first element matching the strategy
func (p *PlaywrightSession) FindElement(ctx context.Context, by string, value string) (interfaces.Element, error) {
	selector, err := selectorFor(by, value)
	if err != nil {
		return nil, err
	}

	locator := p.page.Locator(selector)
	count, err := locator.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to find %s %q: %w", by, value, err)
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: %s %q", entities.ErrElementNotFound, by, value)
	}

	return &playwrightElement{locator: locator.First()}, nil
}

// Navigate - navigates to the specified URL
func (p *PlaywrightSession) Navigate(ctx context.Context, url string) error {
	p.logger.Infof("Navigating to: %s", url)
	_, err := p.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
		Timeout:   playwright.Float(30000),
	})
	return err
}

// MaximizeWindow - resizes the viewport to a full HD screen
func (p *PlaywrightSession) MaximizeWindow(ctx context.Context) error {
	return p.page.SetViewportSize(maximizedWidth, maximizedHeight)
}

// Screenshot - takes screenshot of current page
func (p *PlaywrightSession) Screenshot(ctx context.Context) ([]byte, error) {
	return p.page.Screenshot()
}

// Close - closes context and browser and stops playwright
func (p *PlaywrightSession) Close() error {
	var errs []error
	if err := p.context.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close context: %w", err))
	}
	if err := p.browser.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close browser: %w", err))
	}
	if err := p.pw.Stop(); err != nil {
		errs = append(errs, fmt.Errorf("failed to stop playwright: %w", err))
	}
	return errors.Join(errs...)
}

type playwrightElement struct {
	locator playwright.Locator
}

func (e *playwrightElement) Click() error               { return e.locator.Click() }
func (e *playwrightElement) Clear() error               { return e.locator.Clear() }
func (e *playwrightElement) SendKeys(text string) error { return e.locator.PressSequentially(text) }
func (e *playwrightElement) IsDisplayed() (bool, error) { return e.locator.IsVisible() }
func (e *playwrightElement) Text() (string, error)      { return e.locator.InnerText() }

// Ensure PlaywrightSession implements Session interface
var _ interfaces.Session = (*PlaywrightSession)(nil)
