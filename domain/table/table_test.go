package table

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueNullMarker(t *testing.T) {
	assert.True(t, Null().IsNull())
	assert.True(t, Value{}.IsNull(), "zero Value is the null marker")
	assert.False(t, NewNumeric(0).IsNull(), "numeric zero is a value, not null")
	assert.False(t, NewString("").IsNull(), "empty string is a value, not null")
	assert.True(t, NewNumeric(math.NaN()).IsNull(), "NaN coerces to the null marker")
}

func TestValueJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want string
	}{
		{"numeric", NewNumeric(2.5), "2.5"},
		{"string", NewString("a"), `"a"`},
		{"bool", NewBool(true), "true"},
		{"null", Null(), "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))

			var back Value
			require.NoError(t, json.Unmarshal(data, &back))
			assert.Equal(t, tt.in, back)
		})
	}
}

func TestInferDType(t *testing.T) {
	tests := []struct {
		name   string
		values []Value
		want   DType
	}{
		{"all numeric", []Value{NewNumeric(1), NewNumeric(2)}, DTypeNumeric},
		{"numeric with nulls", []Value{NewNumeric(1), Null()}, DTypeNumeric},
		{"all strings", []Value{NewString("a"), NewString("b")}, DTypeString},
		{"all booleans", []Value{NewBool(true), NewBool(false)}, DTypeBoolean},
		{"mixed", []Value{NewNumeric(1), NewString("a")}, DTypeOther},
		{"empty", nil, DTypeOther},
		{"all null", []Value{Null(), Null()}, DTypeOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferDType(tt.values))
		})
	}
}

func TestDeclaredDTypeWins(t *testing.T) {
	col := Column{Name: "x", Declared: DTypeNumeric, Values: []Value{Null(), Null()}}
	assert.Equal(t, DTypeNumeric, col.DType())
}

func TestMemTableConstruction(t *testing.T) {
	tbl, err := New(
		Column{Name: "id", Values: []Value{NewNumeric(1), NewNumeric(2)}},
		Column{Name: "name", Values: []Value{NewString("a"), Null()}},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, tbl.ColumnNames())
	assert.Equal(t, 2, tbl.RowCount())
	assert.Equal(t, 2, tbl.ColumnCount())

	col, ok := tbl.Column("name")
	require.True(t, ok)
	assert.Equal(t, 1, col.NullCount())

	_, ok = tbl.Column("missing")
	assert.False(t, ok)
}

func TestMemTableRejectsDuplicateNames(t *testing.T) {
	_, err := New(
		Column{Name: "id", Values: []Value{NewNumeric(1)}},
		Column{Name: "id", Values: []Value{NewNumeric(2)}},
	)
	assert.ErrorIs(t, err, ErrDuplicateColumn)
}

func TestMemTableRejectsRaggedColumns(t *testing.T) {
	_, err := New(
		Column{Name: "a", Values: []Value{NewNumeric(1)}},
		Column{Name: "b", Values: []Value{NewNumeric(1), NewNumeric(2)}},
	)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}
