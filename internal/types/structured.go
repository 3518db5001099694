package types

import (
	"encoding/json"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// Value is an opaque structured payload: arbitrary nested key-value data whose
// shape is interpreted ad hoc by whoever consumes it. Accessors address into the
// payload with JSONPath expressions, so callers never depend on a rigid schema.
type Value struct {
	data any
}

// NewValue wraps an already-decoded structure in a Value.
func NewValue(data any) Value {
	return Value{data: data}
}

// UnmarshalJSON implements json.Unmarshaler. A payload that fails to decode
// structurally is a hard error for the caller; there is no partial value.
func (v *Value) UnmarshalJSON(raw []byte) error {
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}
	v.data = data
	return nil
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.data)
}

// IsZero reports whether the value holds no payload at all.
func (v Value) IsZero() bool {
	return v.data == nil
}

// Raw returns the underlying decoded structure.
func (v Value) Raw() any {
	return v.data
}

// String renders the payload as compact JSON, for verbose output.
func (v Value) String() string {
	return oj.JSON(v.data)
}

// GetString returns the string at the given JSONPath, and whether a string
// value was found there.
func (v Value) GetString(path string) (string, bool) {
	result, ok := v.get(path)
	if !ok {
		return "", false
	}
	s, ok := result.(string)
	return s, ok
}

// GetObject returns the object at the given JSONPath, and whether an object
// was found there.
func (v Value) GetObject(path string) (map[string]any, bool) {
	result, ok := v.get(path)
	if !ok {
		return nil, false
	}
	m, ok := result.(map[string]any)
	return m, ok
}

// GetNumber returns the number at the given JSONPath, and whether a numeric
// value was found there.
func (v Value) GetNumber(path string) (float64, bool) {
	result, ok := v.get(path)
	if !ok {
		return 0, false
	}
	switch n := result.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

// StringOr returns the string at the given JSONPath, or fallback when absent
// or not a string.
func (v Value) StringOr(path, fallback string) string {
	if s, ok := v.GetString(path); ok {
		return s
	}
	return fallback
}

func (v Value) get(path string) (any, bool) {
	if v.data == nil {
		return nil, false
	}
	expr, err := jp.ParseString(path)
	if err != nil {
		return nil, false
	}
	results := expr.Get(v.data)
	if len(results) == 0 {
		return nil, false
	}
	return results[0], true
}
