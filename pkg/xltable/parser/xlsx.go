package parser

import (
	"strconv"

	"github.com/ukaji3/xltable/pkg/xltable/models"
	"github.com/xuri/excelize/v2"
)

type xlsxWorkbook struct {
	f        *excelize.File
	names    []string
	date1904 bool
}

// OpenXLSX opens a modern (XML-in-zip) workbook.
func OpenXLSX(path string) (Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	wb := &xlsxWorkbook{f: f, names: f.GetSheetList()}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		wb.date1904 = *props.Date1904
	}
	return wb, nil
}

func (wb *xlsxWorkbook) NumSheets() int {
	return len(wb.names)
}

func (wb *xlsxWorkbook) Sheet(i int) (Sheet, error) {
	if i < 0 || i >= len(wb.names) {
		return nil, nil
	}
	s, err := newXLSXSheet(wb, wb.names[i])
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (wb *xlsxWorkbook) Close() error {
	return wb.f.Close()
}

type xlsxSheet struct {
	wb   *xlsxWorkbook
	name string
	// raw holds the raw cell text of every row element, nil for rows
	// missing from the sheet data.
	raw [][]string
}

// newXLSXSheet buffers the raw row layout of a sheet. Cell types are looked
// up lazily per cell afterwards.
func newXLSXSheet(wb *xlsxWorkbook, name string) (*xlsxSheet, error) {
	rows, err := wb.f.Rows(name)
	if err != nil {
		return nil, err
	}
	s := &xlsxSheet{wb: wb, name: name}
	for rows.Next() {
		cols, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			rows.Close()
			return nil, err
		}
		s.raw = append(s.raw, cols)
	}
	if err := rows.Error(); err != nil {
		rows.Close()
		return nil, err
	}
	return s, rows.Close()
}

func (s *xlsxSheet) Name() string {
	return s.name
}

func (s *xlsxSheet) LastRowIndex() int {
	return len(s.raw) - 1
}

func (s *xlsxSheet) Row(i int) (models.Row, bool) {
	if i < 0 || i >= len(s.raw) || len(s.raw[i]) == 0 {
		return nil, false
	}
	cols := s.raw[i]
	row := make(models.Row, len(cols))
	for col := range cols {
		cell, err := excelize.CoordinatesToCellName(col+1, i+1)
		if err != nil {
			continue
		}
		row[col] = s.readCell(cell, cols[col])
	}
	return row, true
}

// readCell maps one native cell onto a value.
func (s *xlsxSheet) readCell(cell, raw string) models.Value {
	f := s.wb.f
	if formula, err := f.GetCellFormula(s.name, cell); err == nil && formula != "" {
		if code, ok := ErrorCode(formula); ok {
			return models.Error(code)
		}
		return models.Formula(formula)
	}
	cellType, err := f.GetCellType(s.name, cell)
	if err != nil {
		return models.Absent()
	}
	switch cellType {
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		if raw == "" {
			return models.Absent()
		}
		num, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.String(raw)
		}
		if s.isDateFormatted(cell) {
			if t, err := excelize.ExcelDateToTime(num, s.wb.date1904); err == nil {
				return models.Date(t)
			}
		}
		return models.Number(num)
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return models.String(raw)
	case excelize.CellTypeBool:
		return models.Bool(raw == "1" || raw == "true" || raw == "TRUE")
	case excelize.CellTypeError:
		if code, ok := ErrorCode(raw); ok {
			return models.Error(code)
		}
		return models.Error(models.ErrCodeNA)
	case excelize.CellTypeDate:
		if t, ok := parseISODate(raw); ok {
			return models.Date(t)
		}
		return models.String(raw)
	default:
		return models.Absent()
	}
}

func (s *xlsxSheet) isDateFormatted(cell string) bool {
	styleID, err := s.wb.f.GetCellStyle(s.name, cell)
	if err != nil {
		return false
	}
	style, err := s.wb.f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	if style.CustomNumFmt != nil {
		return isDateFormatCode(*style.CustomNumFmt)
	}
	return isBuiltInDateFmt(style.NumFmt)
}
