package profiling

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/D-Vella/Data-Quality-Checker/domain/table"
)

func sampleTable(t *testing.T) *table.MemTable {
	t.Helper()
	tbl, err := table.New(
		table.Column{Name: "id", Values: []table.Value{
			table.NewNumeric(1), table.NewNumeric(2), table.NewNumeric(2),
		}},
		table.Column{Name: "name", Values: []table.Value{
			table.NewString("a"), table.Null(), table.NewString("bcd"),
		}},
		table.Column{Name: "flag", Values: []table.Value{
			table.NewBool(true), table.NewBool(false), table.Null(),
		}},
	)
	require.NoError(t, err)
	return tbl
}

func TestProfileColumnNumeric(t *testing.T) {
	col := table.Column{Name: "age", Values: []table.Value{
		table.NewNumeric(25), table.NewNumeric(-5), table.NewNumeric(30), table.Null(),
	}}
	cs := New().ProfileColumn(col)

	assert.Equal(t, "age", cs.ColumnName)
	assert.Equal(t, 4, cs.Count)
	assert.Equal(t, 1, cs.NullCount)
	assert.Equal(t, 3, cs.UniqueCount)
	assert.Equal(t, table.DTypeNumeric, cs.DType)
	assert.Equal(t, 25.0, cs.NullPercentage)

	require.NotNil(t, cs.NumericStats)
	assert.Nil(t, cs.StringStats)
	ns := cs.NumericStats
	assert.Equal(t, -5.0, ns.Min)
	assert.Equal(t, 30.0, ns.Max)
	assert.InDelta(t, 50.0/3, ns.Mean, 1e-9)
	assert.Equal(t, 25.0, ns.Median)
	// Sample standard deviation with the N-1 divisor.
	assert.InDelta(t, math.Sqrt((25*25+(-5)*(-5)+30*30-3*(50.0/3)*(50.0/3))/2), ns.Std, 1e-9)
	// min <= mean <= max must hold for any non-empty numeric column.
	assert.LessOrEqual(t, ns.Min, ns.Mean)
	assert.LessOrEqual(t, ns.Mean, ns.Max)
}

func TestProfileColumnString(t *testing.T) {
	col := table.Column{Name: "name", Values: []table.Value{
		table.NewString("a"), table.NewString("héllo"), table.Null(),
	}}
	cs := New().ProfileColumn(col)

	assert.Equal(t, table.DTypeString, cs.DType)
	assert.Nil(t, cs.NumericStats)
	require.NotNil(t, cs.StringStats)
	// Lengths are rune counts, so "héllo" counts 5.
	assert.Equal(t, 1, cs.StringStats.MinLength)
	assert.Equal(t, 5, cs.StringStats.MaxLength)
	assert.Equal(t, 3.0, cs.StringStats.MeanLength)
}

func TestProfileColumnDegradesWithoutError(t *testing.T) {
	tests := []struct {
		name string
		col  table.Column
	}{
		{"empty column", table.Column{Name: "x"}},
		{"all nulls", table.Column{Name: "x", Values: []table.Value{table.Null(), table.Null()}}},
		{"declared numeric, all nulls", table.Column{
			Name: "x", Declared: table.DTypeNumeric,
			Values: []table.Value{table.Null(), table.Null()},
		}},
		{"mixed types", table.Column{Name: "x", Values: []table.Value{
			table.NewNumeric(1), table.NewString("a"),
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := New().ProfileColumn(tt.col)
			assert.Nil(t, cs.NumericStats)
			assert.Nil(t, cs.StringStats)
		})
	}
}

func TestSingleValueStdIsZero(t *testing.T) {
	cs := New().ProfileColumn(table.Column{Name: "x", Values: []table.Value{table.NewNumeric(7)}})
	require.NotNil(t, cs.NumericStats)
	assert.Zero(t, cs.NumericStats.Std)
}

func TestSummaryMatchesPerColumnNullCounts(t *testing.T) {
	tbl := sampleTable(t)
	p := New()

	summary := p.Summary(tbl)
	assert.Equal(t, 3, summary.RowCount)
	assert.Equal(t, 3, summary.ColumnCount)

	total := 0
	for _, cs := range p.ProfileAll(tbl) {
		total += cs.NullCount
	}
	assert.Equal(t, total, summary.TotalNulls)
}

func TestProfileEmptyTable(t *testing.T) {
	tbl, err := table.New(
		table.Column{Name: "id"},
		table.Column{Name: "name"},
	)
	require.NoError(t, err)

	p := New()
	profiles := p.ProfileAll(tbl)
	require.Len(t, profiles, 2)
	for _, cs := range profiles {
		assert.Zero(t, cs.Count)
		assert.Zero(t, cs.NullCount)
		assert.Zero(t, cs.UniqueCount)
		assert.Nil(t, cs.NumericStats)
		assert.Nil(t, cs.StringStats)
	}
	assert.Zero(t, p.Summary(tbl).RowCount)
}

func TestProfileAllContextMatchesSynchronous(t *testing.T) {
	tbl := sampleTable(t)
	p := New()

	sync := p.ProfileAll(tbl)
	conc, err := p.ProfileAllContext(context.Background(), tbl, 4)
	require.NoError(t, err)
	assert.Equal(t, sync, conc)
}

func TestNormalityBlockOnlyForLargeSamples(t *testing.T) {
	small := table.Column{Name: "x", Values: []table.Value{
		table.NewNumeric(1), table.NewNumeric(2), table.NewNumeric(3),
	}}
	cs := New().ProfileColumn(small)
	require.NotNil(t, cs.NumericStats)
	assert.Nil(t, cs.NumericStats.Normality)

	values := make([]table.Value, 20)
	for i := range values {
		values[i] = table.NewNumeric(float64(i%7) + float64(i)/10)
	}
	cs = New().ProfileColumn(table.Column{Name: "y", Values: values})
	require.NotNil(t, cs.NumericStats)
	require.NotNil(t, cs.NumericStats.Normality)
	assert.GreaterOrEqual(t, cs.NumericStats.Normality.PValue, 0.0)
	assert.LessOrEqual(t, cs.NumericStats.Normality.PValue, 1.0)
}

func TestPartitionAdvice(t *testing.T) {
	values := make([]table.Value, 0, 12)
	// One dominant value out of three: skewed distribution.
	for i := 0; i < 10; i++ {
		values = append(values, table.NewString("north"))
	}
	values = append(values, table.NewString("south"), table.NewString("east"))

	tbl, err := table.New(table.Column{Name: "region", Values: values})
	require.NoError(t, err)

	advice, err := New().PartitionAdvice(tbl, "region")
	require.NoError(t, err)
	assert.True(t, advice.Partitionable)
	assert.Equal(t, 3, advice.Cardinality)
	assert.InDelta(t, 10.0/12, advice.BiggestShare, 1e-9)
	assert.InDelta(t, 10.0/12*3, advice.SkewFactor, 1e-9)
	// Moderate skew (+0), low cardinality (+0).
	assert.Equal(t, 0, advice.Score)
}

func TestPartitionAdviceUnknownColumn(t *testing.T) {
	tbl := sampleTable(t)
	_, err := New().PartitionAdvice(tbl, "nope")
	assert.Error(t, err)
}
