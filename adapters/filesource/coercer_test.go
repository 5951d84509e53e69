package filesource

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/D-Vella/Data-Quality-Checker/domain/table"
)

func TestCoerceNumericColumn(t *testing.T) {
	c := NewCoercer(DefaultCoercionConfig())
	col, report := c.CoerceColumn("price", []string{"1.5", "$1,200", "NA", "-3"})

	assert.Equal(t, table.DTypeNumeric, report.DType)
	assert.Zero(t, report.Dropped)
	assert.Equal(t, table.NewNumeric(1.5), col.Values[0])
	assert.Equal(t, table.NewNumeric(1200), col.Values[1])
	assert.True(t, col.Values[2].IsNull())
	assert.Equal(t, table.NewNumeric(-3), col.Values[3])
}

func TestCoerceBooleanBeforeNumeric(t *testing.T) {
	c := NewCoercer(DefaultCoercionConfig())
	col, report := c.CoerceColumn("flag", []string{"true", "no", "YES", "false"})

	assert.Equal(t, table.DTypeBoolean, report.DType)
	assert.Equal(t, table.NewBool(true), col.Values[0])
	assert.Equal(t, table.NewBool(false), col.Values[1])
	assert.Equal(t, table.NewBool(true), col.Values[2])
}

func TestBelowThresholdStaysString(t *testing.T) {
	c := NewCoercer(DefaultCoercionConfig())
	// Two of five non-null cells parse as numbers: 40% < 80%.
	col, report := c.CoerceColumn("mixed", []string{"1", "2", "x", "y", "z"})

	assert.Equal(t, table.DTypeString, report.DType)
	assert.Equal(t, table.NewString("1"), col.Values[0])
}

func TestUnparseableCellsAreDroppedAndCounted(t *testing.T) {
	c := NewCoercer(DefaultCoercionConfig())
	// Four of five parse as numbers: 80% meets the threshold; the
	// straggler becomes a null marker.
	col, report := c.CoerceColumn("n", []string{"1", "2", "3", "4", "oops"})

	assert.Equal(t, table.DTypeNumeric, report.DType)
	assert.Equal(t, 1, report.Dropped)
	assert.True(t, col.Values[4].IsNull())
}

func TestNullMarkers(t *testing.T) {
	c := NewCoercer(DefaultCoercionConfig())
	col, _ := c.CoerceColumn("s", []string{"", "null", "NA", "N/A", "  ", "ok"})

	for i := 0; i < 5; i++ {
		assert.True(t, col.Values[i].IsNull(), "index %d should be null", i)
	}
	assert.Equal(t, table.NewString("ok"), col.Values[5])
}

func TestReadCSV(t *testing.T) {
	src := strings.NewReader("id,name,age\n1,Alice,25\n2,Bob,\n3,,30\n")
	tbl, reports, err := NewReader().ReadCSV(src)
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name", "age"}, tbl.ColumnNames())
	assert.Equal(t, 3, tbl.RowCount())
	require.Len(t, reports, 3)
	assert.Equal(t, table.DTypeNumeric, reports[0].DType)
	assert.Equal(t, table.DTypeString, reports[1].DType)
	assert.Equal(t, table.DTypeNumeric, reports[2].DType)

	age, ok := tbl.Column("age")
	require.True(t, ok)
	assert.True(t, age.Values[1].IsNull())

	name, ok := tbl.Column("name")
	require.True(t, ok)
	assert.True(t, name.Values[2].IsNull())
}

func TestReadRejectsUnknownExtension(t *testing.T) {
	_, _, err := NewReader().Read("data.parquet")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestReadCSVRequiresHeader(t *testing.T) {
	_, _, err := NewReader().ReadCSV(strings.NewReader(""))
	assert.Error(t, err)
}
