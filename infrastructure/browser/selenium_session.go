package browser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
	"github.com/tebeka/selenium/firefox"
)

const (
	chromeDriverPort = 9515
	geckoDriverPort  = 4444
)

// WebDriver error code for a failed element lookup
const noSuchElement = "no such element"

type SeleniumSession struct {
	wd      selenium.WebDriver
	service *selenium.Service
	logger  *logrus.Logger
}

// driverName - returns the WebDriver executable for browser
func driverName(browser entities.Browser) string {
	switch browser {
	case entities.BrowserFirefox:
		return "geckodriver"
	case entities.BrowserEdge:
		return "msedgedriver"
	default:
		return "chromedriver"
	}
}

// findDriver - finds WebDriver executable path
func findDriver(name string) (string, error) {
	if path := os.Getenv("BROWSER_DRIVER_PATH"); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	commonPaths := []string{
		filepath.Join("/usr/local/bin", name),
		filepath.Join("/usr/bin", name),
		filepath.Join("/opt/homebrew/bin", name),
		filepath.Join(os.Getenv("HOME"), "bin", name),
	}

	for _, path := range commonPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	if path, err := exec.LookPath(name); err == nil {
		return path, nil
	}

	return "", fmt.Errorf("%s not found. Please install it or set BROWSER_DRIVER_PATH environment variable", name)
}

// findChromeBinary - finds Chrome/Chromium browser executable path
func findChromeBinary() string {
	if path := os.Getenv("CHROME_BINARY_PATH"); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	chromePaths := []string{
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
		"/Applications/Chromium.app/Contents/MacOS/Chromium",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		`C:\Program Files\Google\Chrome\Application\chrome.exe`,
		`C:\Program Files (x86)\Google\Chrome\Application\chrome.exe`,
	}

	for _, path := range chromePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	for _, name := range []string{"google-chrome", "chromium", "chromium-browser"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	return ""
}

// capabilitiesFor - builds W3C capabilities for browser
func capabilitiesFor(browser entities.Browser, opts Options) selenium.Capabilities {
	args := []string{
		"--disable-dev-shm-usage",
		"--no-sandbox",
	}
	if opts.Headless {
		args = append(args, "--headless=new")
	}

	switch browser {
	case entities.BrowserFirefox:
		caps := selenium.Capabilities{"browserName": "firefox"}
		ffCaps := firefox.Capabilities{}
		if opts.Headless {
			ffCaps.Args = []string{"-headless"}
		}
		caps.AddFirefox(ffCaps)
		return caps

	case entities.BrowserEdge:
		return selenium.Capabilities{
			"browserName":    "MicrosoftEdge",
			"ms:edgeOptions": map[string]interface{}{"args": args},
		}

	default:
		caps := selenium.Capabilities{"browserName": "chrome"}
		chromeCaps := chrome.Capabilities{Args: args}
		if binary := findChromeBinary(); binary != "" {
			chromeCaps.Path = binary
		}
		caps.AddChrome(chromeCaps)
		return caps
	}
}

// startService - starts the local driver and returns its WebDriver endpoint
func startService(browser entities.Browser, opts Options, logger *logrus.Logger) (*selenium.Service, string, error) {
	driverPath, err := findDriver(driverName(browser))
	if err != nil {
		return nil, "", fmt.Errorf("failed to find driver: %w", err)
	}
	logger.Infof("Using %s at: %s", driverName(browser), driverPath)

	port := opts.Port
	if browser == entities.BrowserFirefox {
		if port == 0 {
			port = geckoDriverPort
		}
		service, err := selenium.NewGeckoDriverService(driverPath, port)
		if err != nil {
			return nil, "", fmt.Errorf("failed to start geckodriver: %w", err)
		}
		return service, fmt.Sprintf("http://localhost:%d", port), nil
	}

	if port == 0 {
		port = chromeDriverPort
	}
	// msedgedriver is a chromedriver build and accepts the same flags
	service, err := selenium.NewChromeDriverService(driverPath, port)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start %s: %w", driverName(browser), err)
	}
	return service, fmt.Sprintf("http://localhost:%d/wd/hub", port), nil
}

// NewSeleniumSession - starts a WebDriver session for browser
func NewSeleniumSession(browser entities.Browser, opts Options, logger *logrus.Logger) (*SeleniumSession, error) {
	var service *selenium.Service
	url := opts.RemoteURL

	if url == "" {
		var err error
		service, url, err = startService(browser, opts, logger)
		if err != nil {
			return nil, err
		}
	} else {
		logger.Infof("Using remote WebDriver at: %s", url)
	}

	wd, err := selenium.NewRemote(capabilitiesFor(browser, opts), url)
	if err != nil {
		if service != nil {
			service.Stop()
		}
		if strings.Contains(err.Error(), "cannot find Chrome binary") {
			return nil, fmt.Errorf("failed to create webdriver: Chrome browser not found. Please install Google Chrome or set CHROME_BINARY_PATH environment variable. Error: %w", err)
		}
		return nil, fmt.Errorf("failed to create webdriver: %w", err)
	}

	logger.Infof("Started %s session", browser)
	return &SeleniumSession{
		wd:      wd,
		service: service,
		logger:  logger,
	}, nil
}

// FindElement - finds the first element matching a WebDriver strategy
func (s *SeleniumSession) FindElement(ctx context.Context, by string, value string) (interfaces.Element, error) {
	element, err := s.wd.FindElement(by, value)
	if err != nil {
		return nil, translateFindError(by, value, err)
	}
	return &seleniumElement{we: element}, nil
}

// Navigate - navigates browser to specified URL
func (s *SeleniumSession) Navigate(ctx context.Context, url string) error {
	s.logger.Infof("Navigating to: %s", url)
	return s.wd.Get(url)
}

// MaximizeWindow - maximizes the current window
func (s *SeleniumSession) MaximizeWindow(ctx context.Context) error {
	return s.wd.MaximizeWindow("")
}

// Screenshot - takes screenshot of current page
func (s *SeleniumSession) Screenshot(ctx context.Context) ([]byte, error) {
	return s.wd.Screenshot()
}

// Close - quits the browser and stops the driver service
func (s *SeleniumSession) Close() error {
	var errs []error
	if s.wd != nil {
		if err := s.wd.Quit(); err != nil {
			errs = append(errs, fmt.Errorf("failed to quit webdriver: %w", err))
		}
	}
	if s.service != nil {
		if err := s.service.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop driver service: %w", err))
		}
	}
	return errors.Join(errs...)
}

// translateFindError - marks WebDriver "no such element" failures with ErrElementNotFound
func translateFindError(by string, value string, err error) error {
	var wdErr *selenium.Error
	if errors.As(err, &wdErr) && (wdErr.Err == noSuchElement || wdErr.LegacyCode == 7) {
		return fmt.Errorf("%w: %s %q: %w", entities.ErrElementNotFound, by, value, err)
	}
	return fmt.Errorf("failed to find %s %q: %w", by, value, err)
}

type seleniumElement struct {
	we selenium.WebElement
}

func (e *seleniumElement) Click() error               { return e.we.Click() }
func (e *seleniumElement) Clear() error               { return e.we.Clear() }
func (e *seleniumElement) SendKeys(text string) error { return e.we.SendKeys(text) }
func (e *seleniumElement) IsDisplayed() (bool, error) { return e.we.IsDisplayed() }
func (e *seleniumElement) Text() (string, error)      { return e.we.Text() }

// Ensure SeleniumSession implements Session interface
var _ interfaces.Session = (*SeleniumSession)(nil)
