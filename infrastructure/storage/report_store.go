package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultResultsDir is used when neither a flag nor UI_RESULTS_DIR is given
const DefaultResultsDir = "allure-results"

const resultSuffix = "-result.json"

var attachmentExtensions = map[string]string{
	"image/png":        ".png",
	"image/jpeg":       ".jpg",
	"text/plain":       ".txt",
	"text/html":        ".html",
	"application/json": ".json",
}

// ReportStore writes results and attachments in the Allure results layout
type ReportStore struct {
	dir    string
	logger *logrus.Logger
}

// NewReportStore - creates the results directory and a store writing into it
func NewReportStore(dir string, logger *logrus.Logger) (*ReportStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create results directory: %w", err)
	}
	return &ReportStore{
		dir:    dir,
		logger: logger,
	}, nil
}

// Dir returns the results directory
func (s *ReportStore) Dir() string {
	return s.dir
}

// SaveResult - writes result as <uuid>-result.json
func (s *ReportStore) SaveResult(result *entities.TestResult) error {
	if result.UUID == "" {
		result.UUID = uuid.NewString()
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(s.dir, result.UUID+resultSuffix)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}

	s.logger.Debugf("Result %s (%s) written to %s", result.Name, result.Status, path)
	return nil
}

// SaveAttachment - writes data as <uuid>-attachment<ext>
func (s *ReportStore) SaveAttachment(name string, mimeType string, data []byte) (entities.Attachment, error) {
	source := uuid.NewString() + "-attachment" + attachmentExtensions[mimeType]
	if err := os.WriteFile(filepath.Join(s.dir, source), data, 0644); err != nil {
		return entities.Attachment{}, fmt.Errorf("failed to write attachment %s: %w", name, err)
	}

	return entities.Attachment{
		Name:   name,
		Source: source,
		Type:   mimeType,
	}, nil
}

// LoadResults - loads every result in the directory, oldest first
func (s *ReportStore) LoadResults() ([]*entities.TestResult, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*entities.TestResult{}, nil
		}
		return nil, err
	}

	results := make([]*entities.TestResult, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), resultSuffix) {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		var result entities.TestResult
		if err := json.Unmarshal(data, &result); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", entry.Name(), err)
		}
		results = append(results, &result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Start < results[j].Start
	})
	return results, nil
}

// Ensure ReportStore implements ReportStore interface
var _ interfaces.ReportStore = (*ReportStore)(nil)
