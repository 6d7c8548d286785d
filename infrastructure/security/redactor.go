package security

import (
	"strings"

	"ui_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
)

const maskedValue = "******"

var sensitiveKeywords = []string{
	"password", "passwd", "pwd",
	"secret",
	"token",
	"pin", "otp",
	"credential",
}

type Redactor struct {
	logger   *logrus.Logger
	keywords []string
}

// NewRedactor - creates a redactor with the default keyword list plus extra keywords
func NewRedactor(logger *logrus.Logger, extra ...string) *Redactor {
	keywords := append([]string{}, sensitiveKeywords...)
	for _, k := range extra {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			keywords = append(keywords, k)
		}
	}
	return &Redactor{
		logger:   logger,
		keywords: keywords,
	}
}

// IsSensitive - checks if a field name or locator value looks like secret input
func (r *Redactor) IsSensitive(field string) bool {
	lowerField := strings.ToLower(field)
	for _, keyword := range r.keywords {
		if strings.Contains(lowerField, keyword) {
			return true
		}
	}
	return false
}

// Mask - hides value when field is sensitive
func (r *Redactor) Mask(field string, value string) string {
	if value == "" || !r.IsSensitive(field) {
		return value
	}
	r.logger.Tracef("Masked value for %s", field)
	return maskedValue
}

// Ensure Redactor implements Redactor interface
var _ interfaces.Redactor = (*Redactor)(nil)
