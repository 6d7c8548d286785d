package entities

import "errors"

// Locator and element errors
var (
	ErrInvalidLocatorKind = errors.New("invalid locator kind")
	ErrElementNotFound    = errors.New("element not found")
)

// Test data errors
var (
	ErrDataFileNotFound  = errors.New("data file not found")
	ErrSheetNotFound     = errors.New("sheet not found")
	ErrInvalidFileFormat = errors.New("invalid file format")
	ErrCellOutOfRange    = errors.New("cell out of range")
	ErrMalformedRow      = errors.New("malformed data row")
)

// Configuration errors
var (
	ErrConfigNotFound     = errors.New("configuration file not found")
	ErrSectionNotFound    = errors.New("configuration section not found")
	ErrKeyNotFound        = errors.New("configuration key not found")
	ErrUnsupportedBrowser = errors.New("provide a valid browser name from this list: chrome/firefox/edge")
)
