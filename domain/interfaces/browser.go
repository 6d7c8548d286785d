package interfaces

import (
	"context"

	"ui_automation/domain/entities"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_browser.go ui_automation/domain/interfaces Session,Element,SessionFactory

// Session is a live browser session used to find and act on elements
type Session interface {
	// FindElement returns the first element matching a native WebDriver strategy
	FindElement(ctx context.Context, by string, value string) (Element, error)

	// Navigate opens a URL in the current window
	Navigate(ctx context.Context, url string) error

	// MaximizeWindow maximizes the current window
	MaximizeWindow(ctx context.Context) error

	// Screenshot captures the current viewport as PNG
	Screenshot(ctx context.Context) ([]byte, error)

	// Close ends the session and releases the browser
	Close() error
}

// Element is a handle to a live UI node, valid for a single operation
type Element interface {
	Click() error
	Clear() error
	SendKeys(text string) error
	IsDisplayed() (bool, error)
	Text() (string, error)
}

// SessionFactory opens browser sessions
type SessionFactory interface {
	Open(ctx context.Context, browser entities.Browser) (Session, error)
}
