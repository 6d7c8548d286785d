package browser

import (
	"os"
	"strconv"
	"strings"
)

// Session backends
const (
	BackendSelenium   = "selenium"
	BackendPlaywright = "playwright"
)

// Options controls how sessions are started
type Options struct {
	// Backend is BackendSelenium (default) or BackendPlaywright
	Backend string

	// RemoteURL points at a running WebDriver endpoint; no local driver is started when set
	RemoteURL string

	// Port for the local driver service, 0 picks the driver default
	Port int

	Headless bool
}

// OptionsFromEnv - reads UI_BACKEND, SELENIUM_REMOTE_URL, BROWSER_DRIVER_PORT and HEADLESS
func OptionsFromEnv() Options {
	opts := Options{
		Backend:   strings.ToLower(strings.TrimSpace(os.Getenv("UI_BACKEND"))),
		RemoteURL: strings.TrimSpace(os.Getenv("SELENIUM_REMOTE_URL")),
	}
	if opts.Backend == "" {
		opts.Backend = BackendSelenium
	}
	if port, err := strconv.Atoi(os.Getenv("BROWSER_DRIVER_PORT")); err == nil {
		opts.Port = port
	}
	if headless, err := strconv.ParseBool(os.Getenv("HEADLESS")); err == nil {
		opts.Headless = headless
	}
	return opts
}
