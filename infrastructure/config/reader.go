package config

import (
	"errors"
	"fmt"
	"os"

	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// DefaultConfigPath is used when neither a flag nor UI_CONFIG_PATH is given
const DefaultConfigPath = "configurations/config.ini"

type Reader struct {
	path   string
	logger *logrus.Logger
}

// NewReader - creates a reader over the ini file at path
func NewReader(path string, logger *logrus.Logger) *Reader {
	return &Reader{
		path:   path,
		logger: logger,
	}
}

// Path returns the file the reader loads
func (r *Reader) Path() string {
	return r.path
}

// Read - loads the file and returns the raw value of key in section.
// The file is read from disk on every call.
func (r *Reader) Read(section string, key string) (string, error) {
	if _, err := os.Stat(r.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", entities.ErrConfigNotFound, r.path)
		}
		return "", fmt.Errorf("failed to stat configuration %s: %w", r.path, err)
	}

	file, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveKeys:         true,
		IgnoreInlineComment:     true,
		PreserveSurroundedQuote: true,
	}, r.path)
	if err != nil {
		return "", fmt.Errorf("failed to read configuration %s: %w", r.path, err)
	}

	sec, err := file.GetSection(section)
	if err != nil {
		return "", fmt.Errorf("%w: section %q does not exist in %s", entities.ErrSectionNotFound, section, r.path)
	}

	// keys missing from a section fall back to [DEFAULT]
	k, err := sec.GetKey(key)
	if err != nil {
		k, err = file.Section(ini.DefaultSection).GetKey(key)
	}
	if err != nil {
		return "", fmt.Errorf("%w: key %q does not exist in section %q", entities.ErrKeyNotFound, key, section)
	}

	r.logger.Debugf("Config %s/%s loaded from %s", section, key, r.path)
	return k.String(), nil
}

// Ensure Reader implements ConfigSource interface
var _ interfaces.ConfigSource = (*Reader)(nil)
