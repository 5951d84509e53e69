package table

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ValueType defines the storage type for a single cell.
type ValueType string

const (
	ValueNumeric ValueType = "numeric"
	ValueString  ValueType = "string"
	ValueBool    ValueType = "boolean"
	ValueNull    ValueType = "null"
)

// Value is a typed cell with an explicit null marker. The null marker is
// distinct from every valid value, including zero and the empty string.
// The zero Value is the null marker.
//
// Value is comparable, so it can be used directly as a map key for
// uniqueness and membership checks.
type Value struct {
	Type ValueType
	Num  float64
	Str  string
	Bool bool
}

// NewNumeric creates a numeric cell. NaN is coerced to the null marker so
// that "not a number" and "no value" cannot be conflated downstream.
func NewNumeric(f float64) Value {
	if math.IsNaN(f) {
		return Null()
	}
	return Value{Type: ValueNumeric, Num: f}
}

// NewString creates a string cell.
func NewString(s string) Value {
	return Value{Type: ValueString, Str: s}
}

// NewBool creates a boolean cell.
func NewBool(b bool) Value {
	return Value{Type: ValueBool, Bool: b}
}

// Null returns the null marker.
func Null() Value {
	return Value{Type: ValueNull}
}

// IsNull reports whether the cell holds the null marker. The check is
// type-agnostic: the zero Value is also null.
func (v Value) IsNull() bool {
	return v.Type == ValueNull || v.Type == ""
}

// AsFloat returns the numeric content, if any.
func (v Value) AsFloat() (float64, bool) {
	if v.Type != ValueNumeric {
		return 0, false
	}
	return v.Num, true
}

// AsString returns the string content, if any.
func (v Value) AsString() (string, bool) {
	if v.Type != ValueString {
		return "", false
	}
	return v.Str, true
}

// AsBool returns the boolean content, if any.
func (v Value) AsBool() (bool, bool) {
	if v.Type != ValueBool {
		return false, false
	}
	return v.Bool, true
}

// String renders the cell for display. Nulls render as "<null>".
func (v Value) String() string {
	switch v.Type {
	case ValueNumeric:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case ValueString:
		return v.Str
	case ValueBool:
		return strconv.FormatBool(v.Bool)
	default:
		return "<null>"
	}
}

// MarshalJSON encodes the cell as its natural JSON scalar: numbers as
// numbers, strings as strings, booleans as booleans, the null marker as
// JSON null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Type {
	case ValueNumeric:
		return json.Marshal(v.Num)
	case ValueString:
		return json.Marshal(v.Str)
	case ValueBool:
		return json.Marshal(v.Bool)
	case ValueNull, "":
		return []byte("null"), nil
	default:
		return nil, fmt.Errorf("unknown value type %q", v.Type)
	}
}

// UnmarshalJSON decodes a JSON scalar into a cell.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := FromAny(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// FromAny converts a dynamically typed scalar (as produced by JSON or YAML
// decoding) into a Value. nil becomes the null marker.
func FromAny(raw any) (Value, error) {
	switch x := raw.(type) {
	case nil:
		return Null(), nil
	case float64:
		return NewNumeric(x), nil
	case float32:
		return NewNumeric(float64(x)), nil
	case int:
		return NewNumeric(float64(x)), nil
	case int64:
		return NewNumeric(float64(x)), nil
	case string:
		return NewString(x), nil
	case bool:
		return NewBool(x), nil
	default:
		return Value{}, fmt.Errorf("unsupported cell type %T", raw)
	}
}
