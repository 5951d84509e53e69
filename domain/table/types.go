package table

// Package table holds the in-memory columnar model the profiler and the
// validation engine operate on. A table is an ordered set of named columns;
// each column is an ordered sequence of typed cells that may contain the
// null marker.

// DType is the logical type of a column.
type DType string

const (
	DTypeNumeric DType = "numeric"
	DTypeString  DType = "string"
	DTypeBoolean DType = "boolean"
	DTypeOther   DType = "other"

	// DTypeUnknown means no type was declared; it is resolved by
	// inspecting the column's non-null values.
	DTypeUnknown DType = ""
)

// Column is a named, ordered sequence of cells of one logical type.
type Column struct {
	Name string
	// Declared is the schema-declared logical type. When unset, the
	// type is inferred from the values.
	Declared DType
	Values   []Value
}

// DType resolves the column's logical type, preferring the declared schema
// over runtime inspection.
func (c Column) DType() DType {
	if c.Declared != DTypeUnknown {
		return c.Declared
	}
	return InferDType(c.Values)
}

// InferDType inspects non-null values and classifies the column. A column
// whose non-null values are not all of one logical type, or that has no
// non-null values at all, classifies as DTypeOther.
func InferDType(values []Value) DType {
	seen := DTypeUnknown
	for _, v := range values {
		if v.IsNull() {
			continue
		}
		var dt DType
		switch v.Type {
		case ValueNumeric:
			dt = DTypeNumeric
		case ValueString:
			dt = DTypeString
		case ValueBool:
			dt = DTypeBoolean
		default:
			return DTypeOther
		}
		if seen == DTypeUnknown {
			seen = dt
		} else if seen != dt {
			return DTypeOther
		}
	}
	if seen == DTypeUnknown {
		return DTypeOther
	}
	return seen
}

// NullCount counts cells holding the null marker.
func (c Column) NullCount() int {
	n := 0
	for _, v := range c.Values {
		if v.IsNull() {
			n++
		}
	}
	return n
}

// Table is the read surface consumed by the profiler and the validator.
// Implementations must keep column order stable across calls.
type Table interface {
	// ColumnNames returns column names in insertion order.
	ColumnNames() []string
	// Column returns the named column, or false when absent.
	Column(name string) (Column, bool)
	// RowCount returns the number of rows, independent of any column.
	RowCount() int
}
