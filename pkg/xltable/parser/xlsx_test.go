package parser

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xltable/pkg/xltable/models"
	"github.com/xuri/excelize/v2"
)

func openTyped(t *testing.T) Workbook {
	t.Helper()
	wb, err := OpenXLSX(filepath.Join("testdata", "typed.xlsx"))
	require.NoError(t, err)
	t.Cleanup(func() { wb.Close() })
	return wb
}

func TestOpenXLSX_CellDispatch(t *testing.T) {
	wb := openTyped(t)
	require.Equal(t, 2, wb.NumSheets())

	sheet, err := wb.Sheet(0)
	require.NoError(t, err)
	require.NotNil(t, sheet)
	assert.Equal(t, "Typed", sheet.Name())
	assert.Equal(t, 4, sheet.LastRowIndex())

	row, ok := sheet.Row(0)
	require.True(t, ok)
	require.Len(t, row, 9)

	assert.True(t, models.Number(42.5).Equal(row[0]), "A1: %v", row[0])

	assert.Equal(t, models.KindDate, row[1].Kind(), "B1")
	assert.True(t, row[1].Time().Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)), "B1: %v", row[1])

	assert.True(t, models.Bool(true).Equal(row[2]), "C1: %v", row[2])
	assert.True(t, models.Error(models.ErrCodeDiv0).Equal(row[3]), "D1: %v", row[3])
	assert.True(t, models.Formula("SUM(A1,1)").Equal(row[4]), "E1: %v", row[4])
	assert.True(t, models.String("hello").Equal(row[5]), "F1: %v", row[5])
	assert.True(t, models.String("shared").Equal(row[6]), "G1: %v", row[6])
	assert.True(t, models.String("").Equal(row[7]), "H1: %v", row[7])
	assert.True(t, models.Number(7).Equal(row[8]), "I1: %v", row[8])
}

func TestOpenXLSX_AbsentAndSparseRows(t *testing.T) {
	wb := openTyped(t)
	sheet, err := wb.Sheet(0)
	require.NoError(t, err)

	_, ok := sheet.Row(1)
	assert.False(t, ok, "row 2 is missing from the sheet")

	row, ok := sheet.Row(2)
	require.True(t, ok)
	require.Len(t, row, 2)
	assert.True(t, row[0].IsAbsent())
	assert.True(t, models.String("x").Equal(row[1]))

	_, ok = sheet.Row(3)
	assert.False(t, ok, "row 4 holds no cells")

	row, ok = sheet.Row(4)
	require.True(t, ok)
	require.Len(t, row, 2)
	assert.Equal(t, models.KindDate, row[0].Kind(), "custom date format")
	assert.True(t, row[0].Time().Equal(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)), "A5: %v", row[0])
	assert.True(t, models.Error(models.ErrCodeNA).Equal(row[1]))

	_, ok = sheet.Row(99)
	assert.False(t, ok)
}

func TestOpenXLSX_EmptySheet(t *testing.T) {
	wb := openTyped(t)
	sheet, err := wb.Sheet(1)
	require.NoError(t, err)
	assert.Equal(t, "Empty", sheet.Name())
	assert.Equal(t, -1, sheet.LastRowIndex())

	sheet, err = wb.Sheet(5)
	assert.NoError(t, err)
	assert.Nil(t, sheet)
}

func TestOpenXLSX_MissingFile(t *testing.T) {
	_, err := OpenXLSX(filepath.Join(t.TempDir(), "none.xlsx"))
	assert.Error(t, err)
}

func TestXLSXWriter_RoundTrip(t *testing.T) {
	ts := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	w := NewXLSXWriter()
	require.NoError(t, w.AddSheet("Data"))
	require.NoError(t, w.AddSheet("Second"))

	values := models.Row{
		models.Number(1.5),
		models.String("a"),
		models.Bool(false),
		models.Error(models.ErrCodeRef),
		models.Date(ts),
		models.Calendar(ts),
		models.Formula("A1*2"),
		models.Absent(),
		models.String("end"),
	}
	for col, v := range values {
		require.NoError(t, w.SetValue("Data", 0, col, v))
	}
	require.NoError(t, w.AddRow("Data", 1))
	require.NoError(t, w.SetValue("Data", 2, 1, models.String("x")))
	require.NoError(t, w.SetValue("Second", 0, 0, models.Number(3)))

	// the suffix is not checked
	path := filepath.Join(t.TempDir(), "out.xls")
	require.NoError(t, w.SaveAs(path))
	require.NoError(t, w.Close())

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Data", "Second"}, f.GetSheetList())
	require.NoError(t, f.Close())

	wb, err := OpenXLSX(path)
	require.NoError(t, err)
	defer wb.Close()

	sheet, err := wb.Sheet(0)
	require.NoError(t, err)
	assert.Equal(t, 2, sheet.LastRowIndex())

	row, ok := sheet.Row(0)
	require.True(t, ok)
	require.Len(t, row, 9)
	assert.True(t, models.Number(1.5).Equal(row[0]), "number: %v", row[0])
	assert.True(t, models.String("a").Equal(row[1]), "string: %v", row[1])
	assert.True(t, models.Bool(false).Equal(row[2]), "bool: %v", row[2])
	assert.True(t, models.Error(models.ErrCodeRef).Equal(row[3]), "error: %v", row[3])
	assert.True(t, models.String("2024-03-15 10:30:00").Equal(row[4]), "date: %v", row[4])
	assert.Equal(t, models.KindDate, row[5].Kind(), "calendar: %v", row[5])
	assert.WithinDuration(t, ts, row[5].Time(), time.Second)
	assert.True(t, models.Formula("A1*2").Equal(row[6]), "formula: %v", row[6])
	assert.True(t, row[7].IsAbsent())
	assert.True(t, models.String("end").Equal(row[8]))

	_, ok = sheet.Row(1)
	assert.False(t, ok)

	row, ok = sheet.Row(2)
	require.True(t, ok)
	require.Len(t, row, 2)
	assert.True(t, row[0].IsAbsent())
}

func TestXLSXWriter_FirstSheetKeepsDefaultName(t *testing.T) {
	w := NewXLSXWriter()
	defer w.Close()
	require.NoError(t, w.AddSheet("Sheet1"))
	require.NoError(t, w.AddSheet("Other"))
	assert.Equal(t, []string{"Sheet1", "Other"}, w.f.GetSheetList())
}

func TestXLSXWriter_SheetNamesIgnoreCase(t *testing.T) {
	w := NewXLSXWriter()
	defer w.Close()
	require.NoError(t, w.AddSheet("Data"))
	assert.ErrorContains(t, w.AddSheet("data"), "already exists")
	assert.ErrorContains(t, w.AddSheet("DATA"), "already exists")
	require.NoError(t, w.AddSheet("Other"))
	assert.Equal(t, []string{"Data", "Other"}, w.f.GetSheetList())
}

func TestXLSXWriter_NonFiniteNumbers(t *testing.T) {
	w := NewXLSXWriter()
	require.NoError(t, w.AddSheet("Data"))
	values := []float64{math.NaN(), math.Inf(1), math.Inf(-1), 2}
	for col, f := range values {
		require.NoError(t, w.SetValue("Data", 0, col, models.Number(f)))
	}
	path := filepath.Join(t.TempDir(), "nonfinite.xlsx")
	require.NoError(t, w.SaveAs(path))
	require.NoError(t, w.Close())

	wb, err := OpenXLSX(path)
	require.NoError(t, err)
	defer wb.Close()
	sheet, err := wb.Sheet(0)
	require.NoError(t, err)
	row, ok := sheet.Row(0)
	require.True(t, ok)
	require.Len(t, row, 4)
	for col := 0; col < 3; col++ {
		assert.True(t, models.Error(models.ErrCodeNum).Equal(row[col]), "col %d: %v", col, row[col])
	}
	assert.True(t, models.Number(2).Equal(row[3]))
}
