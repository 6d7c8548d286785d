package browser

import (
	"context"
	"testing"

	"ui_automation/domain/entities"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestFactoryUnknownBackend(t *testing.T) {
	logger, _ := test.NewNullLogger()
	f := NewFactory(Options{Backend: "rod"}, logger)

	session, err := f.Open(context.Background(), entities.BrowserChrome)
	assert.Nil(t, session)
	assert.ErrorContains(t, err, `unknown backend "rod"`)
}

func TestOptionsFromEnv(t *testing.T) {
	t.Setenv("UI_BACKEND", "Playwright")
	t.Setenv("SELENIUM_REMOTE_URL", " http://grid:4444/wd/hub ")
	t.Setenv("BROWSER_DRIVER_PORT", "9600")
	t.Setenv("HEADLESS", "true")

	assert.Equal(t, Options{
		Backend:   BackendPlaywright,
		RemoteURL: "http://grid:4444/wd/hub",
		Port:      9600,
		Headless:  true,
	}, OptionsFromEnv())

	t.Setenv("UI_BACKEND", "")
	t.Setenv("HEADLESS", "")
	t.Setenv("BROWSER_DRIVER_PORT", "")
	opts := OptionsFromEnv()
	assert.Equal(t, BackendSelenium, opts.Backend)
	assert.False(t, opts.Headless)
	assert.Zero(t, opts.Port)
}
