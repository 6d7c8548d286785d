package interfaces

// Redactor hides sensitive values before they reach logs or reports
type Redactor interface {
	// IsSensitive checks if a field name refers to secret input
	IsSensitive(field string) bool

	// Mask returns value unchanged, or a placeholder for sensitive fields
	Mask(field string, value string) string
}
