package parser

import (
	"fmt"
	"math"
	"os"

	"github.com/ukaji3/xltable/pkg/xltable/models"
	"github.com/xuri/excelize/v2"
)

// XLSXWriter builds a modern workbook cell by cell.
type XLSXWriter struct {
	f       *excelize.File
	sheets  int
	initial string
}

// NewXLSXWriter returns a writer over a fresh workbook.
func NewXLSXWriter() *XLSXWriter {
	f := excelize.NewFile()
	return &XLSXWriter{f: f, initial: f.GetSheetName(0)}
}

// AddSheet creates a sheet. The default sheet of a new workbook is renamed
// to the first name instead of being left behind empty. Sheet names are
// case-insensitive, so a name that only differs in case from an existing
// sheet is rejected.
func (w *XLSXWriter) AddSheet(name string) error {
	w.sheets++
	if w.sheets == 1 {
		if name == w.initial {
			return nil
		}
		return w.f.SetSheetName(w.initial, name)
	}
	index, err := w.f.GetSheetIndex(name)
	if err != nil {
		return err
	}
	if index >= 0 {
		return fmt.Errorf("sheet %q already exists", name)
	}
	_, err = w.f.NewSheet(name)
	return err
}

// AddRow makes sure the 0-based row exists even when it holds no cells.
func (w *XLSXWriter) AddRow(sheet string, row int) error {
	return w.f.SetRowVisible(sheet, row+1, true)
}

// SetValue writes v into the cell at 0-based coordinates.
func (w *XLSXWriter) SetValue(sheet string, row, col int, v models.Value) error {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}
	if v.IsBlank() {
		return w.f.SetCellValue(sheet, cell, nil)
	}
	switch v.Kind() {
	case models.KindNumber:
		f := v.Float()
		// a cell cannot hold NaN or infinities
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return w.f.SetCellFormula(sheet, cell, ErrorLiteral(models.ErrCodeNum))
		}
		return w.f.SetCellFloat(sheet, cell, f, -1, 64)
	case models.KindString:
		return w.f.SetCellStr(sheet, cell, v.Text())
	case models.KindBool:
		return w.f.SetCellBool(sheet, cell, v.Boolean())
	case models.KindError:
		return w.f.SetCellFormula(sheet, cell, ErrorLiteral(v.Code()))
	case models.KindDate:
		return w.f.SetCellStr(sheet, cell, v.Time().Format(models.DateLayout))
	case models.KindCalendar:
		return w.f.SetCellValue(sheet, cell, v.Time())
	case models.KindFormula:
		return w.f.SetCellFormula(sheet, cell, v.Text())
	case models.KindAbsent:
		return w.f.SetCellValue(sheet, cell, nil)
	}
	return w.f.SetCellStr(sheet, cell, v.String())
}

// SaveAs writes the workbook to path and syncs it to disk. The path suffix
// does not change the output format, and unlike excelize's own SaveAs any
// suffix is accepted.
func (w *XLSXWriter) SaveAs(path string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	if err := w.f.Write(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Close releases the workbook.
func (w *XLSXWriter) Close() error {
	return w.f.Close()
}
