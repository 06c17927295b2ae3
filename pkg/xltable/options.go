// Package xltable converts between spreadsheet files and in-memory tables.
package xltable

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Format represents a spreadsheet file format.
type Format string

const (
	// FormatLegacy is the binary xls format. Read only.
	FormatLegacy Format = "xls"
	// FormatModern is the XML-in-zip xlsx format.
	FormatModern Format = "xlsx"
)

// RowSizing selects how long a decoded row is.
type RowSizing string

const (
	// RowSizingCells sizes a row by its own last cell index.
	RowSizingCells RowSizing = "cells"
	// RowSizingSheetRows sizes every present row by the sheet's last row
	// index, grown when a row holds more cells than that.
	RowSizingSheetRows RowSizing = "sheet-rows"
)

// DefaultCharset is used for legacy workbooks when Options.Charset is empty.
const DefaultCharset = "utf-8"

// Options configures decode and encode behavior.
type Options struct {
	// Compat logs and swallows validation and I/O failures instead of
	// returning them. Decode then returns nil when no workbook could be
	// opened, and encode returns the path whether or not it was written.
	Compat bool
	// RowSizing selects the decoded row length.
	// If empty, defaults to RowSizingSheetRows in compat mode and
	// RowSizingCells otherwise.
	RowSizing RowSizing
	// Charset is the text encoding passed to the legacy reader.
	Charset string
	// Logger receives failure and progress logs.
	// If nil, the logrus standard logger is used.
	Logger *logrus.Logger
}

// DefaultOptions returns strict options.
func DefaultOptions() Options {
	return Options{
		RowSizing: RowSizingCells,
		Charset:   DefaultCharset,
	}
}

// CompatOptions returns options that reproduce swallow-and-log error
// handling and sheet-row sized rows.
func CompatOptions() Options {
	return Options{
		Compat:    true,
		RowSizing: RowSizingSheetRows,
		Charset:   DefaultCharset,
	}
}

// ShouldSizeBySheetRows returns whether rows are sized by the sheet's last
// row index.
func (o Options) ShouldSizeBySheetRows() bool {
	if o.RowSizing != "" {
		return o.RowSizing == RowSizingSheetRows
	}
	return o.Compat
}

func (o Options) charset() string {
	if o.Charset == "" {
		return DefaultCharset
	}
	return o.Charset
}

func (o Options) logger() *logrus.Logger {
	if o.Logger == nil {
		return logrus.StandardLogger()
	}
	return o.Logger
}

// fail returns err, or logs it and returns nil in compat mode. Strict mode
// leaves reporting to the caller and only logs at debug level.
func (o Options) fail(err error) error {
	entry := o.logger().WithError(err)
	var ce *CodecError
	if errors.As(err, &ce) {
		entry = entry.WithFields(logrus.Fields{
			"path": ce.Path,
			"op":   ce.Op,
		})
	}
	if o.Compat {
		entry.Error("spreadsheet codec failure")
		return nil
	}
	entry.Debug("spreadsheet codec failure")
	return err
}
