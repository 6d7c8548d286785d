package interfaces

import (
	"context"

	"ui_automation/domain/entities"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_interaction.go ui_automation/domain/interfaces Interactor

// Interactor performs element interactions addressed by locators
type Interactor interface {
	// Element resolves a locator to a live element
	Element(ctx context.Context, loc entities.Locator) (Element, error)

	// TypeInto clicks, clears and types text into an element
	TypeInto(ctx context.Context, text string, loc entities.Locator) error

	// Click clicks an element
	Click(ctx context.Context, loc entities.Locator) error

	// IsDisplayed reports element visibility
	IsDisplayed(ctx context.Context, loc entities.Locator) (bool, error)

	// Text returns the rendered text of an element
	Text(ctx context.Context, loc entities.Locator) (string, error)
}
