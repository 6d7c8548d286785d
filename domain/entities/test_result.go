package entities

// Status is the outcome of a test case
type Status string

const (
	StatusPassed Status = "passed"
	StatusFailed Status = "failed"
	StatusBroken Status = "broken"
)

// Parameter is a named input shown in the report
type Parameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Attachment references a file stored next to the result
type Attachment struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	Type   string `json:"type"`
}

// StatusDetails carries the failure message of a case
type StatusDetails struct {
	Message string `json:"message,omitempty"`
}

// TestResult is a single executed case, laid out as an Allure result file
type TestResult struct {
	UUID          string        `json:"uuid"`
	HistoryID     string        `json:"historyId"`
	Name          string        `json:"name"`
	FullName      string        `json:"fullName"`
	Status        Status        `json:"status"`
	StatusDetails StatusDetails `json:"statusDetails"`
	Stage         string        `json:"stage"`
	Parameters    []Parameter   `json:"parameters,omitempty"`
	Attachments   []Attachment  `json:"attachments,omitempty"`
	Start         int64         `json:"start"`
	Stop          int64         `json:"stop"`
}
