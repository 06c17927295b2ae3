package parser

import (
	"errors"
	"fmt"
	"os"

	"github.com/extrame/xls"
	"github.com/ukaji3/xltable/pkg/xltable/models"
)

// maxLegacyCols is the BIFF8 column limit.
const maxLegacyCols = 256

// ErrNoWorkbookStream is returned when an OLE2 file carries no workbook.
var ErrNoWorkbookStream = errors.New("no Workbook or Book stream found")

type xlsWorkbook struct {
	file *os.File
	wb   *xls.WorkBook
}

// OpenXLS opens a legacy binary workbook. The library exposes rendered cell
// text only, so values are inferred from that text.
func OpenXLS(path, charset string) (_ Workbook, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed xls file: %v", r)
		}
	}()
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	wb, err := xls.OpenReader(file, charset)
	if err == nil && wb == nil {
		err = ErrNoWorkbookStream
	}
	if err != nil {
		file.Close()
		return nil, err
	}
	return &xlsWorkbook{file: file, wb: wb}, nil
}

func (w *xlsWorkbook) NumSheets() int {
	return w.wb.NumSheets()
}

func (w *xlsWorkbook) Sheet(i int) (_ Sheet, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed xls sheet %d: %v", i, r)
		}
	}()
	ws := w.wb.GetSheet(i)
	if ws == nil {
		return nil, nil
	}
	return &xlsSheet{ws: ws}, nil
}

// Close releases the file. Sheets are parsed from it on first access, so
// it stays open until the workbook is done with.
func (w *xlsWorkbook) Close() error {
	return w.file.Close()
}

type xlsSheet struct {
	ws *xls.WorkSheet
}

func (s *xlsSheet) Name() string {
	return s.ws.Name
}

func (s *xlsSheet) LastRowIndex() int {
	if s.ws.MaxRow == 0 && s.row(0) == nil {
		return -1
	}
	return int(s.ws.MaxRow)
}

// row guards the library accessor, which dereferences missing rows.
func (s *xlsSheet) row(i int) (r *xls.Row) {
	defer func() {
		if recover() != nil {
			r = nil
		}
	}()
	return s.ws.Row(i)
}

func (s *xlsSheet) Row(i int) (models.Row, bool) {
	// the library keys rows by uint16, so larger indexes would wrap
	if i < 0 || i > int(s.ws.MaxRow) {
		return nil, false
	}
	r := s.row(i)
	if r == nil {
		return nil, false
	}
	// rows built from cell records carry no column span, so scan the full width
	last := r.LastCol()
	if last <= 0 || last > maxLegacyCols {
		last = maxLegacyCols
	}
	values := make(models.Row, last)
	lastCell := -1
	for col := 0; col < last; col++ {
		values[col] = inferText(r.Col(col))
		if !values[col].IsAbsent() {
			lastCell = col
		}
	}
	return values[:lastCell+1], true
}
