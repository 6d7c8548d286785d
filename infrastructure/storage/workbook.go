package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// DefaultDataPath is used when neither a flag nor UI_TESTDATA_PATH is given
const DefaultDataPath = "ExcelFiles/testData.xlsx"

// DefaultSheet holds the login test data
const DefaultSheet = "Sheet1"

// Workbook reads and writes test data in xlsx files.
// Every call opens the file again, nothing is cached between calls.
type Workbook struct {
	logger *logrus.Logger
}

// NewWorkbook - creates new workbook data source
func NewWorkbook(logger *logrus.Logger) *Workbook {
	return &Workbook{logger: logger}
}

// open - opens the workbook and checks that sheet exists
func (w *Workbook) open(path string, sheet string) (*excelize.File, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", entities.ErrDataFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".xls" {
		return nil, fmt.Errorf("%w: %s is a legacy .xls workbook, convert it to .xlsx", entities.ErrInvalidFileFormat, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", entities.ErrInvalidFileFormat, path, err)
	}

	if !slices.Contains(f.GetSheetList(), sheet) {
		f.Close()
		return nil, fmt.Errorf("%w: %q does not exist in %s", entities.ErrSheetNotFound, sheet, path)
	}

	return f, nil
}

// grid - returns sheet rows with the sheet's row and column counts
func (w *Workbook) grid(path string, sheet string) ([][]string, int, int, error) {
	f, err := w.open(path, sheet)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	maxCol := 0
	for _, row := range rows {
		maxCol = max(maxCol, len(row))
	}

	return rows, len(rows), maxCol, nil
}

// LoadTable - returns rows 2..maxRow of the sheet, each padded to the sheet's column count
func (w *Workbook) LoadTable(path string, sheet string) ([]entities.DataRow, error) {
	rows, maxRow, maxCol, err := w.grid(path, sheet)
	if err != nil {
		return nil, err
	}

	table := make([]entities.DataRow, 0, max(maxRow-1, 0))
	for r := 1; r < maxRow; r++ {
		row := make(entities.DataRow, maxCol)
		copy(row, rows[r])
		table = append(table, row)
	}

	w.logger.Infof("Loaded %d data rows (%d columns) from %s[%s]", len(table), maxCol, path, sheet)
	return table, nil
}

// Header - returns row 1 of the sheet padded to the sheet's column count
func (w *Workbook) Header(path string, sheet string) ([]string, error) {
	rows, maxRow, maxCol, err := w.grid(path, sheet)
	if err != nil {
		return nil, err
	}

	header := make([]string, maxCol)
	if maxRow > 0 {
		copy(header, rows[0])
	}
	return header, nil
}

// Create - writes a new workbook holding only a header row. An existing file is never overwritten.
func (w *Workbook) Create(path string, sheet string, header []string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("refusing to overwrite %s: %w", path, os.ErrExist)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if sheet != DefaultSheet {
		if err := f.SetSheetName(DefaultSheet, sheet); err != nil {
			return fmt.Errorf("failed to name sheet %q: %w", sheet, err)
		}
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}

	w.logger.Infof("Created %s[%s] with columns %v", path, sheet, header)
	return nil
}

// RowCount - returns the number of rows in the sheet, header included
func (w *Workbook) RowCount(path string, sheet string) (int, error) {
	_, maxRow, _, err := w.grid(path, sheet)
	return maxRow, err
}

// ColumnCount - returns the widest row of the sheet
func (w *Workbook) ColumnCount(path string, sheet string) (int, error) {
	_, _, maxCol, err := w.grid(path, sheet)
	return maxCol, err
}

// CellValue - returns the value of a 1-based cell
func (w *Workbook) CellValue(path string, sheet string, row int, col int) (string, error) {
	cell, err := cellName(row, col)
	if err != nil {
		return "", err
	}

	f, err := w.open(path, sheet)
	if err != nil {
		return "", err
	}
	defer f.Close()

	value, err := f.GetCellValue(sheet, cell)
	if err != nil {
		return "", fmt.Errorf("failed to read cell %s: %w", cell, err)
	}
	return value, nil
}

// SetCellValue - writes a 1-based cell and saves the workbook in place
func (w *Workbook) SetCellValue(path string, sheet string, row int, col int, value string) error {
	cell, err := cellName(row, col)
	if err != nil {
		return err
	}

	f, err := w.open(path, sheet)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("failed to write cell %s: %w", cell, err)
	}
	if err := f.Save(); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}

	w.logger.Infof("Cell %s[%s]!%s updated", path, sheet, cell)
	return nil
}

func cellName(row int, col int) (string, error) {
	if row < 1 || col < 1 {
		return "", fmt.Errorf("%w: row %d, column %d", entities.ErrCellOutOfRange, row, col)
	}
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", fmt.Errorf("%w: %v", entities.ErrCellOutOfRange, err)
	}
	return name, nil
}

// Ensure Workbook implements DataSource interface
var _ interfaces.DataSource = (*Workbook)(nil)
