package xltable

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CheckFile reports ErrFileNotFound for an empty path. Logging is left to
// the caller.
func CheckFile(path string) error {
	if path == "" {
		return NewCodecError(path, "check", ErrFileNotFound)
	}
	return nil
}

// CheckExists reports ErrFileNotFound when nothing exists at path.
func CheckExists(path string) error {
	if err := CheckFile(path); err != nil {
		return err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return NewCodecError(path, "check", fmt.Errorf("%w: %s", ErrFileNotFound, path))
	}
	return nil
}

// CheckExtension reports ErrNotSpreadsheet unless the file name ends in
// xls or xlsx.
func CheckExtension(path string) error {
	name := filepath.Base(path)
	if !strings.HasSuffix(name, string(FormatLegacy)) && !strings.HasSuffix(name, string(FormatModern)) {
		return NewCodecError(path, "check", fmt.Errorf("%w: %s", ErrNotSpreadsheet, name))
	}
	return nil
}

// DetectFormat picks the format from the file name suffix.
func DetectFormat(path string) (Format, error) {
	name := filepath.Base(path)
	switch {
	case strings.HasSuffix(name, string(FormatModern)):
		return FormatModern, nil
	case strings.HasSuffix(name, string(FormatLegacy)):
		return FormatLegacy, nil
	}
	return "", NewCodecError(path, "check", fmt.Errorf("%w: %s", ErrUnsupportedFormat, name))
}

// validate runs the file and extension checks. In compat mode failures are
// logged and nil is returned.
func (o Options) validate(path string) error {
	if err := CheckFile(path); err != nil {
		return o.fail(err)
	}
	if err := CheckExtension(path); err != nil {
		return o.fail(err)
	}
	return nil
}
