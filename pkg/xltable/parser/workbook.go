// Package parser provides spreadsheet reading and writing on top of the
// native xls and xlsx libraries.
package parser

import "github.com/ukaji3/xltable/pkg/xltable/models"

// Workbook is a read-only view over an opened spreadsheet file.
type Workbook interface {
	// NumSheets returns the number of sheets, including absent ones.
	NumSheets() int
	// Sheet returns the sheet at index i. A nil Sheet with a nil error
	// means the workbook reports no sheet there.
	Sheet(i int) (Sheet, error)
	// Close releases the underlying file.
	Close() error
}

// Sheet is a read-only view over one worksheet.
type Sheet interface {
	Name() string
	// LastRowIndex returns the 0-based index of the last row, or -1 for an
	// empty sheet.
	LastRowIndex() int
	// Row returns the values of cells 0 through the row's last cell index,
	// or false when the row is absent.
	Row(i int) (models.Row, bool)
}
