package storage

import (
	"os"
	"path/filepath"
	"testing"

	"ui_automation/domain/entities"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves rows into Sheet1 of a new workbook under t.TempDir()
func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "testData.xlsx")

	f := excelize.NewFile()
	defer f.Close()
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(DefaultSheet, cell, value))
		}
	}
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadTableSkipsHeader(t *testing.T) {
	logger, _ := test.NewNullLogger()
	path := writeWorkbook(t, [][]any{
		{"email_address", "password"},
		{"user@x.com", "secret"},
		{"standard_user", "secret_sauce"},
		{"locked_out_user", "secret_sauce"},
	})

	rows, err := NewWorkbook(logger).LoadTable(path, DefaultSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, entities.DataRow{"user@x.com", "secret"}, rows[0])
	assert.Equal(t, entities.DataRow{"locked_out_user", "secret_sauce"}, rows[2])
}

func TestLoadTableRowsHaveSheetWidth(t *testing.T) {
	logger, _ := test.NewNullLogger()
	path := writeWorkbook(t, [][]any{
		{"email_address", "password", "note"},
		{"only@x.com"},
		{"a@x.com", "pw"},
		{},
		{"b@x.com", "pw", "third"},
	})

	rows, err := NewWorkbook(logger).LoadTable(path, DefaultSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	for _, row := range rows {
		assert.Len(t, row, 3)
	}
	assert.Equal(t, entities.DataRow{"only@x.com", "", ""}, rows[0])
	assert.Equal(t, entities.DataRow{"", "", ""}, rows[2])
}

func TestLoadTableHeaderOnly(t *testing.T) {
	logger, _ := test.NewNullLogger()
	path := writeWorkbook(t, [][]any{{"email_address", "password"}})

	rows, err := NewWorkbook(logger).LoadTable(path, DefaultSheet)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestLoadTableErrors(t *testing.T) {
	logger, _ := test.NewNullLogger()
	wb := NewWorkbook(logger)
	dir := t.TempDir()

	_, err := wb.LoadTable(filepath.Join(dir, "missing.xlsx"), DefaultSheet)
	assert.ErrorIs(t, err, entities.ErrDataFileNotFound)

	garbage := filepath.Join(dir, "garbage.xlsx")
	require.NoError(t, os.WriteFile(garbage, []byte("not a zip archive"), 0o644))
	_, err = wb.LoadTable(garbage, DefaultSheet)
	assert.ErrorIs(t, err, entities.ErrInvalidFileFormat)

	legacy := filepath.Join(dir, "legacy.xls")
	require.NoError(t, os.WriteFile(legacy, []byte{0xD0, 0xCF, 0x11, 0xE0}, 0o644))
	_, err = wb.LoadTable(legacy, DefaultSheet)
	assert.ErrorIs(t, err, entities.ErrInvalidFileFormat)

	path := writeWorkbook(t, [][]any{{"h"}})
	_, err = wb.LoadTable(path, "Sheet2")
	assert.ErrorIs(t, err, entities.ErrSheetNotFound)
}

func TestRowAndColumnCount(t *testing.T) {
	logger, _ := test.NewNullLogger()
	wb := NewWorkbook(logger)
	path := writeWorkbook(t, [][]any{
		{"email_address", "password"},
		{"user@x.com", "secret"},
	})

	rowsN, err := wb.RowCount(path, DefaultSheet)
	require.NoError(t, err)
	assert.Equal(t, 2, rowsN)

	colsN, err := wb.ColumnCount(path, DefaultSheet)
	require.NoError(t, err)
	assert.Equal(t, 2, colsN)
}

func TestCellValueRoundTrip(t *testing.T) {
	logger, _ := test.NewNullLogger()
	wb := NewWorkbook(logger)
	path := writeWorkbook(t, [][]any{
		{"email_address", "password"},
		{"user@x.com", "secret"},
	})

	value, err := wb.CellValue(path, DefaultSheet, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, "user@x.com", value)

	require.NoError(t, wb.SetCellValue(path, DefaultSheet, 3, 2, "hunter2"))

	value, err = wb.CellValue(path, DefaultSheet, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", value)

	rows, err := wb.LoadTable(path, DefaultSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, entities.DataRow{"", "hunter2"}, rows[1])

	_, err = wb.CellValue(path, DefaultSheet, 0, 1)
	assert.ErrorIs(t, err, entities.ErrCellOutOfRange)
	assert.ErrorIs(t, wb.SetCellValue(path, DefaultSheet, 1, -1, "x"), entities.ErrCellOutOfRange)
}

func TestCreateWritesHeaderOnly(t *testing.T) {
	logger, _ := test.NewNullLogger()
	wb := NewWorkbook(logger)
	path := filepath.Join(t.TempDir(), "ExcelFiles", "testData.xlsx")

	require.NoError(t, wb.Create(path, "Logins", []string{"email_address", "password"}))

	header, err := wb.Header(path, "Logins")
	require.NoError(t, err)
	assert.Equal(t, []string{"email_address", "password"}, header)

	rows, err := wb.LoadTable(path, "Logins")
	require.NoError(t, err)
	assert.Empty(t, rows)

	err = wb.Create(path, "Logins", []string{"x"})
	assert.ErrorIs(t, err, os.ErrExist)
}
