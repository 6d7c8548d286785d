package browser

import (
	"context"
	"fmt"

	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// Factory opens sessions on the configured backend
type Factory struct {
	opts   Options
	logger *logrus.Logger
}

// NewFactory - creates new session factory
func NewFactory(opts Options, logger *logrus.Logger) *Factory {
	return &Factory{
		opts:   opts,
		logger: logger,
	}
}

// Open - starts a session for browser
func (f *Factory) Open(ctx context.Context, browser entities.Browser) (interfaces.Session, error) {
	switch f.opts.Backend {
	case "", BackendSelenium:
		session, err := NewSeleniumSession(browser, f.opts, f.logger)
		if err != nil {
			return nil, err
		}
		return session, nil
	case BackendPlaywright:
		session, err := NewPlaywrightSession(browser, f.opts, f.logger)
		if err != nil {
			return nil, err
		}
		return session, nil
	default:
		return nil, fmt.Errorf("unknown backend %q, expected %s or %s", f.opts.Backend, BackendSelenium, BackendPlaywright)
	}
}

// Ensure Factory implements SessionFactory interface
var _ interfaces.SessionFactory = (*Factory)(nil)
