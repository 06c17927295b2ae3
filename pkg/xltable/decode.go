package xltable

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/xltable/pkg/xltable/models"
	"github.com/ukaji3/xltable/pkg/xltable/parser"
)

// Decode reads every sheet of a spreadsheet file into a table.
//
// The parser is chosen by file name suffix. In compat mode failures are
// logged rather than returned, and a nil table means no workbook could be
// opened.
func Decode(path string, opts Options) (*models.Table, error) {
	if err := opts.validate(path); err != nil {
		return nil, err
	}

	wb, err := openWorkbook(path, opts)
	if err != nil {
		return nil, opts.fail(err)
	}

	return decodeWorkbook(wb, path, opts)
}

// decodeWorkbook reads every sheet of an open workbook and closes it. A
// sheet the workbook cannot resolve leaves a missing placeholder.
func decodeWorkbook(wb parser.Workbook, path string, opts Options) (*models.Table, error) {
	table := models.NewTable()
	table.BookName = filepath.Base(path)
	bySheetRows := opts.ShouldSizeBySheetRows()

	var readErr error
	for i := 0; i < wb.NumSheets(); i++ {
		sheet, err := wb.Sheet(i)
		if err != nil {
			readErr = NewCodecError(path, "read", err)
			break
		}
		if sheet == nil {
			table.PutMissing()
			continue
		}
		rows := decodeRows(sheet, bySheetRows)
		table.Put(sheet.Name(), rows)
		if b := parser.DataBounds(rows); b != nil {
			s, _ := table.Sheet(sheet.Name())
			s.Range = b.Ref()
		}
	}

	if err := wb.Close(); err != nil && readErr == nil {
		readErr = NewCodecError(path, "close", err)
	}
	if readErr != nil {
		if err := opts.fail(readErr); err != nil {
			return nil, err
		}
	}

	opts.logger().WithFields(logrus.Fields{
		"path":   path,
		"sheets": len(table.Sheets),
	}).Debug("decoded workbook")
	return table, nil
}

// openWorkbook selects the parser from the file name suffix.
func openWorkbook(path string, opts Options) (parser.Workbook, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	var wb parser.Workbook
	switch format {
	case FormatModern:
		wb, err = parser.OpenXLSX(path)
	case FormatLegacy:
		wb, err = parser.OpenXLS(path, opts.charset())
	}
	if err != nil {
		return nil, NewCodecError(path, "open", err)
	}
	return wb, nil
}

// decodeRows walks rows 0 through the sheet's last row index. Absent rows
// become empty rows; present rows are sized by their last cell, or by the
// sheet's last row index when bySheetRows is set.
func decodeRows(sheet parser.Sheet, bySheetRows bool) []models.Row {
	last := sheet.LastRowIndex()
	rows := make([]models.Row, 0, last+1)
	for r := 0; r <= last; r++ {
		cells, ok := sheet.Row(r)
		if !ok {
			rows = append(rows, models.Row{})
			continue
		}
		size := len(cells)
		if bySheetRows && last > size {
			size = last
		}
		row := make(models.Row, size)
		copy(row, cells)
		rows = append(rows, row)
	}
	return rows
}
