package browser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ui_automation/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
	"github.com/tebeka/selenium/firefox"
)

func TestTranslateFindError(t *testing.T) {
	notFound := &selenium.Error{Err: "no such element", Message: "Unable to locate element"}
	err := translateFindError(selenium.ByID, "user-name", notFound)
	assert.ErrorIs(t, err, entities.ErrElementNotFound)
	assert.ErrorIs(t, err, notFound)

	legacy := &selenium.Error{LegacyCode: 7}
	assert.ErrorIs(t, translateFindError(selenium.ByXPATH, "//h3", legacy), entities.ErrElementNotFound)

	stale := &selenium.Error{Err: "invalid selector"}
	err = translateFindError(selenium.ByXPATH, "//[", stale)
	assert.NotErrorIs(t, err, entities.ErrElementNotFound)
	assert.ErrorIs(t, err, stale)

	assert.NotErrorIs(t, translateFindError(selenium.ByID, "x", errors.New("connection refused")), entities.ErrElementNotFound)
}

func TestFindDriverFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chromedriver")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))
	t.Setenv("BROWSER_DRIVER_PATH", path)

	got, err := findDriver("chromedriver")
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestFindDriverMissing(t *testing.T) {
	t.Setenv("BROWSER_DRIVER_PATH", "")
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PATH", t.TempDir())

	_, err := findDriver("no-such-driver-binary")
	assert.ErrorContains(t, err, "no-such-driver-binary not found")
}

func TestDriverName(t *testing.T) {
	assert.Equal(t, "chromedriver", driverName(entities.BrowserChrome))
	assert.Equal(t, "geckodriver", driverName(entities.BrowserFirefox))
	assert.Equal(t, "msedgedriver", driverName(entities.BrowserEdge))
}

func TestCapabilitiesFor(t *testing.T) {
	t.Setenv("CHROME_BINARY_PATH", "")

	caps := capabilitiesFor(entities.BrowserChrome, Options{Headless: true})
	assert.Equal(t, "chrome", caps["browserName"])
	chromeCaps, ok := caps[chrome.CapabilitiesKey].(chrome.Capabilities)
	require.True(t, ok)
	assert.Contains(t, chromeCaps.Args, "--headless=new")

	caps = capabilitiesFor(entities.BrowserFirefox, Options{Headless: true})
	assert.Equal(t, "firefox", caps["browserName"])
	ffCaps, ok := caps[firefox.CapabilitiesKey].(firefox.Capabilities)
	require.True(t, ok)
	assert.Equal(t, []string{"-headless"}, ffCaps.Args)

	caps = capabilitiesFor(entities.BrowserEdge, Options{})
	assert.Equal(t, "MicrosoftEdge", caps["browserName"])
	edgeCaps, ok := caps["ms:edgeOptions"].(map[string]interface{})
	require.True(t, ok)
	assert.NotContains(t, edgeCaps["args"], "--headless=new")
}
