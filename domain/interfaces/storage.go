package interfaces

import "ui_automation/domain/entities"

// DataSource loads tabular test data
type DataSource interface {
	// LoadTable returns every row after the header of the named sheet
	LoadTable(path string, sheet string) ([]entities.DataRow, error)
}

// ReportStore persists test results and their attachments
type ReportStore interface {
	// SaveResult writes a finished test result
	SaveResult(result *entities.TestResult) error

	// SaveAttachment stores binary content and returns a reference to it
	SaveAttachment(name string, mimeType string, data []byte) (entities.Attachment, error)
}
