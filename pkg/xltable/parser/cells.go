package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/xltable/pkg/xltable/models"
)

// errorLiterals maps spreadsheet error text to its BIFF error code.
var errorLiterals = map[string]byte{
	"#NULL!":        models.ErrCodeNull,
	"#DIV/0!":       models.ErrCodeDiv0,
	"#VALUE!":       models.ErrCodeValue,
	"#REF!":         models.ErrCodeRef,
	"#NAME?":        models.ErrCodeName,
	"#NUM!":         models.ErrCodeNum,
	"#N/A":          models.ErrCodeNA,
	"#GETTING_DATA": models.ErrCodeGettingData,
}

// ErrorCode returns the BIFF code for an error literal such as "#DIV/0!".
func ErrorCode(literal string) (byte, bool) {
	code, ok := errorLiterals[strings.ToUpper(strings.TrimSpace(literal))]
	return code, ok
}

// ErrorLiteral is the inverse of ErrorCode. Unknown codes render as #N/A.
func ErrorLiteral(code byte) string {
	for literal, c := range errorLiterals {
		if c == code {
			return literal
		}
	}
	return "#N/A"
}

// isBuiltInDateFmt reports whether a built-in number format id renders a
// date or time.
func isBuiltInDateFmt(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	case id >= 71 && id <= 81:
		return true
	}
	return false
}

// isDateFormatCode reports whether a custom number format code renders a
// date or time. Quoted literals, escaped characters and bracketed sections
// such as colours and locales are ignored; elapsed-time brackets count.
func isDateFormatCode(code string) bool {
	// only the positive section decides
	if i := strings.IndexByte(code, ';'); i >= 0 {
		code = code[:i]
	}
	inQuote := false
	for i := 0; i < len(code); i++ {
		ch := code[i]
		switch {
		case inQuote:
			if ch == '"' {
				inQuote = false
			}
		case ch == '"':
			inQuote = true
		case ch == '\\' || ch == '_' || ch == '*':
			i++
		case ch == '[':
			end := strings.IndexByte(code[i:], ']')
			if end < 0 {
				return false
			}
			inner := strings.ToLower(code[i+1 : i+end])
			if inner == "h" || inner == "hh" || inner == "m" || inner == "mm" || inner == "s" || inner == "ss" {
				return true
			}
			i += end
		default:
			switch ch {
			case 'y', 'Y', 'd', 'D', 'h', 'H', 's', 'S', 'm', 'M':
				return true
			}
		}
	}
	return false
}

// isoLayouts are the layouts accepted for ISO 8601 date cells.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseISODate(s string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// inferText maps a rendered cell string to a value. It serves readers that
// expose text only.
func inferText(s string) models.Value {
	if s == "" {
		return models.Absent()
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return models.Number(f)
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return models.Date(t)
	}
	return models.String(s)
}
