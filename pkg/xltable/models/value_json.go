package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type jsonValue struct {
	Kind  string          `json:"kind"`
	Value json.RawMessage `json:"value,omitempty"`
}

// MarshalJSON encodes Absent as null and every other kind as
// {"kind": ..., "value": ...}.
func (v Value) MarshalJSON() ([]byte, error) {
	var payload interface{}
	switch v.kind {
	case KindAbsent:
		return []byte("null"), nil
	case KindNumber:
		payload = v.num
	case KindString, KindFormula:
		payload = v.str
	case KindBool:
		payload = v.b
	case KindDate, KindCalendar:
		payload = v.t.Format(time.RFC3339Nano)
	case KindError:
		payload = v.code
	default:
		return nil, fmt.Errorf("unknown value kind %d", v.kind)
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(jsonValue{Kind: v.kind.String(), Value: raw})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Absent()
		return nil
	}
	var jv jsonValue
	if err := json.Unmarshal(data, &jv); err != nil {
		return err
	}
	kind, ok := ParseKind(jv.Kind)
	if !ok {
		return fmt.Errorf("unknown value kind %q", jv.Kind)
	}
	switch kind {
	case KindAbsent:
		*v = Absent()
	case KindNumber:
		var f float64
		if err := json.Unmarshal(jv.Value, &f); err != nil {
			return err
		}
		*v = Number(f)
	case KindString, KindFormula:
		var s string
		if err := json.Unmarshal(jv.Value, &s); err != nil {
			return err
		}
		*v = Value{kind: kind, str: s}
	case KindBool:
		var b bool
		if err := json.Unmarshal(jv.Value, &b); err != nil {
			return err
		}
		*v = Bool(b)
	case KindDate, KindCalendar:
		var s string
		if err := json.Unmarshal(jv.Value, &s); err != nil {
			return err
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return err
		}
		*v = Value{kind: kind, t: t}
	case KindError:
		var c byte
		if err := json.Unmarshal(jv.Value, &c); err != nil {
			return err
		}
		*v = Error(c)
	}
	return nil
}
