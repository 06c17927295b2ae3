package xltable

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates a missing file reference or a file that does
// not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrNotSpreadsheet indicates a file name without an xls or xlsx suffix.
var ErrNotSpreadsheet = errors.New("not a spreadsheet file")

// ErrUnsupportedFormat indicates that no parser matches the file name.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// ErrNilTable indicates an encode call without a table.
var ErrNilTable = errors.New("nil table")

// CodecError represents a failure while decoding or encoding a file.
type CodecError struct {
	Path string
	Op   string // "check", "open", "read", "write", "close"
	Err  error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// NewCodecError creates a new CodecError.
func NewCodecError(path, op string, err error) *CodecError {
	return &CodecError{
		Path: path,
		Op:   op,
		Err:  err,
	}
}
