package xltable

import (
	"github.com/sirupsen/logrus"
	"github.com/ukaji3/xltable/pkg/xltable/models"
	"github.com/ukaji3/xltable/pkg/xltable/parser"
)

// Encode writes table to path as an xlsx workbook and returns path.
//
// The output is always xlsx, whatever the suffix: legacy xls output is not
// supported. A nil table writes nothing and, outside compat mode, reports
// ErrNilTable.
func Encode(table *models.Table, path string, opts Options) (string, error) {
	if err := opts.validate(path); err != nil {
		return path, err
	}
	if table == nil {
		if opts.Compat {
			return path, nil
		}
		return path, NewCodecError(path, "write", ErrNilTable)
	}
	if format, err := DetectFormat(path); err == nil && format == FormatLegacy {
		opts.logger().WithField("path", path).Warn("legacy xls output is not supported, writing xlsx content")
	}

	w := parser.NewXLSXWriter()
	if err := writeTable(w, table); err != nil {
		w.Close()
		return path, opts.fail(NewCodecError(path, "write", err))
	}
	if err := w.SaveAs(path); err != nil {
		w.Close()
		return path, opts.fail(NewCodecError(path, "write", err))
	}
	if err := w.Close(); err != nil {
		return path, opts.fail(NewCodecError(path, "close", err))
	}

	opts.logger().WithFields(logrus.Fields{
		"path":   path,
		"sheets": len(table.Sheets),
	}).Debug("encoded workbook")
	return path, nil
}

func writeTable(w *parser.XLSXWriter, table *models.Table) error {
	for _, sheet := range table.Sheets {
		if sheet.Missing {
			continue
		}
		if err := w.AddSheet(sheet.Name); err != nil {
			return err
		}
		for r, row := range sheet.Rows {
			if len(row) == 0 {
				if err := w.AddRow(sheet.Name, r); err != nil {
					return err
				}
				continue
			}
			for c, v := range row {
				if err := w.SetValue(sheet.Name, r, c, v); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
