package entities

import (
	"fmt"
	"strings"
)

// Browser names a browser the harness can drive
type Browser string

const (
	BrowserChrome  Browser = "chrome"
	BrowserFirefox Browser = "firefox"
	BrowserEdge    Browser = "edge"
)

// ParseBrowser - converts a configured browser name into a Browser
func ParseBrowser(name string) (Browser, error) {
	switch b := Browser(strings.ToLower(strings.TrimSpace(name))); b {
	case BrowserChrome, BrowserFirefox, BrowserEdge:
		return b, nil
	default:
		return "", fmt.Errorf("%w (got %q)", ErrUnsupportedBrowser, name)
	}
}
