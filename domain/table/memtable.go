package table

import (
	"errors"
	"fmt"
)

// Construction errors.
var (
	ErrDuplicateColumn = errors.New("duplicate column name")
	ErrLengthMismatch  = errors.New("column length mismatch")
)

// MemTable is the in-memory Table implementation. Columns keep insertion
// order; names are unique; all columns have the same length.
type MemTable struct {
	cols  []Column
	index map[string]int
	rows  int
}

// New builds a MemTable from columns, validating name uniqueness and
// uniform length.
func New(cols ...Column) (*MemTable, error) {
	t := &MemTable{index: make(map[string]int, len(cols))}
	for _, c := range cols {
		if _, exists := t.index[c.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Name)
		}
		if len(t.cols) == 0 {
			t.rows = len(c.Values)
		} else if len(c.Values) != t.rows {
			return nil, fmt.Errorf("%w: column %q has %d rows, expected %d",
				ErrLengthMismatch, c.Name, len(c.Values), t.rows)
		}
		t.index[c.Name] = len(t.cols)
		t.cols = append(t.cols, c)
	}
	return t, nil
}

// MustNew is New for static test fixtures; it panics on invalid input.
func MustNew(cols ...Column) *MemTable {
	t, err := New(cols...)
	if err != nil {
		panic(err)
	}
	return t
}

// ColumnNames returns column names in insertion order.
func (t *MemTable) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// Column returns the named column.
func (t *MemTable) Column(name string) (Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, false
	}
	return t.cols[i], true
}

// RowCount returns the number of rows.
func (t *MemTable) RowCount() int {
	return t.rows
}

// ColumnCount returns the number of columns.
func (t *MemTable) ColumnCount() int {
	return len(t.cols)
}
