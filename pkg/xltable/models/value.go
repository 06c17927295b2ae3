// Package models defines the in-memory table produced and consumed by the codec.
package models

import (
	"fmt"
	"time"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// KindAbsent marks an empty cell.
	KindAbsent Kind = iota
	// KindNumber is a floating-point number.
	KindNumber
	// KindString is plain text.
	KindString
	// KindBool is a boolean.
	KindBool
	// KindDate is a date-time. It is written back as formatted text.
	KindDate
	// KindCalendar is a date-time written back as a native date serial.
	KindCalendar
	// KindFormula is formula source text, never an evaluated result.
	KindFormula
	// KindError is a spreadsheet error code such as #DIV/0!.
	KindError
)

var kindNames = [...]string{
	KindAbsent:   "absent",
	KindNumber:   "number",
	KindString:   "string",
	KindBool:     "bool",
	KindDate:     "date",
	KindCalendar: "calendar",
	KindFormula:  "formula",
	KindError:    "error",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return KindAbsent, false
}

// DateLayout is the text layout used when a KindDate value is written.
const DateLayout = "2006-01-02 15:04:05"

// Error codes as stored in BIFF records.
const (
	ErrCodeNull        byte = 0x00
	ErrCodeDiv0        byte = 0x07
	ErrCodeValue       byte = 0x0F
	ErrCodeRef         byte = 0x17
	ErrCodeName        byte = 0x1D
	ErrCodeNum         byte = 0x24
	ErrCodeNA          byte = 0x2A
	ErrCodeGettingData byte = 0x2B
)

// Value is a single cell value. The zero Value is Absent.
type Value struct {
	kind Kind
	num  float64
	str  string
	b    bool
	t    time.Time
	code byte
}

// Absent returns the empty value.
func Absent() Value { return Value{} }

// Number returns a numeric value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// String returns a text value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Date returns a date-time value that is written as text.
func Date(t time.Time) Value { return Value{kind: KindDate, t: t} }

// Calendar returns a date-time value that is written as a date serial.
func Calendar(t time.Time) Value { return Value{kind: KindCalendar, t: t} }

// Formula returns formula source text, without the leading '='.
func Formula(src string) Value { return Value{kind: KindFormula, str: src} }

// Error returns an error-code value.
func Error(code byte) Value { return Value{kind: KindError, code: code} }

// CalendarTime asks FromAny for a Calendar value instead of a Date.
type CalendarTime time.Time

// FromAny maps an arbitrary Go value onto a Value.
func FromAny(v interface{}) Value {
	switch x := v.(type) {
	case nil:
		return Absent()
	case Value:
		return x
	case float64:
		return Number(x)
	case float32:
		return Number(float64(x))
	case int:
		return Number(float64(x))
	case int8:
		return Number(float64(x))
	case int16:
		return Number(float64(x))
	case int32:
		return Number(float64(x))
	case int64:
		return Number(float64(x))
	case uint:
		return Number(float64(x))
	case uint8:
		return Number(float64(x))
	case uint16:
		return Number(float64(x))
	case uint32:
		return Number(float64(x))
	case uint64:
		return Number(float64(x))
	case string:
		return String(x)
	case bool:
		return Bool(x)
	case error:
		return Error(ErrCodeNA)
	case time.Time:
		return Date(x)
	case *time.Time:
		if x == nil {
			return Absent()
		}
		return Date(*x)
	case CalendarTime:
		return Calendar(time.Time(x))
	default:
		return String(fmt.Sprint(v))
	}
}

// Kind reports the variant.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether v is the empty value.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// IsBlank reports whether v is written as a blank cell.
func (v Value) IsBlank() bool {
	return v.kind == KindAbsent || (v.kind == KindString && v.str == "")
}

// Float returns the number held by a KindNumber value.
func (v Value) Float() float64 { return v.num }

// Text returns the text held by a KindString or KindFormula value.
func (v Value) Text() string { return v.str }

// Boolean returns the flag held by a KindBool value.
func (v Value) Boolean() bool { return v.b }

// Time returns the time held by a KindDate or KindCalendar value.
func (v Value) Time() time.Time { return v.t }

// Code returns the error code held by a KindError value.
func (v Value) Code() byte { return v.code }

// Interface returns the plain Go value: nil, float64, string, bool,
// time.Time or byte.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindString, KindFormula:
		return v.str
	case KindBool:
		return v.b
	case KindDate, KindCalendar:
		return v.t
	case KindError:
		return v.code
	}
	return nil
}

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == o.num
	case KindString, KindFormula:
		return v.str == o.str
	case KindBool:
		return v.b == o.b
	case KindDate, KindCalendar:
		return v.t.Equal(o.t)
	case KindError:
		return v.code == o.code
	}
	return true
}

func (v Value) String() string {
	switch v.kind {
	case KindAbsent:
		return "<absent>"
	case KindNumber:
		return fmt.Sprint(v.num)
	case KindString:
		return v.str
	case KindBool:
		return fmt.Sprint(v.b)
	case KindDate, KindCalendar:
		return v.t.Format(DateLayout)
	case KindFormula:
		return "=" + v.str
	case KindError:
		return fmt.Sprintf("#ERR(0x%02X)", v.code)
	}
	return v.kind.String()
}
