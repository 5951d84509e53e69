package profiling

import (
	"fmt"

	"github.com/D-Vella/Data-Quality-Checker/domain/quality"
	"github.com/D-Vella/Data-Quality-Checker/domain/table"
)

// PartitionAdvice scores how well a column would serve as a partitioning
// key, from its cardinality and value skew. Score ranges -2..2; higher is
// better.
type PartitionAdvice struct {
	ColumnName    string      `json:"column_name"`
	DType         table.DType `json:"dtype"`
	Partitionable bool        `json:"partitionable"`
	Cardinality   int         `json:"cardinality"`
	BiggestShare  float64     `json:"biggest_share"`
	SkewFactor    float64     `json:"skew_factor"`
	Score         int         `json:"score"`
	Observations  []string    `json:"observations"`
}

// PartitionAdvice analyzes a column's distribution and recommends whether
// to partition on it. Columns of dtype other are not partitionable.
func (p *Profiler) PartitionAdvice(t table.Table, column string) (PartitionAdvice, error) {
	col, ok := t.Column(column)
	if !ok {
		return PartitionAdvice{}, quality.NewColumnNotFoundError(column)
	}

	advice := PartitionAdvice{
		ColumnName: column,
		DType:      col.DType(),
	}
	advice.Partitionable = advice.DType != table.DTypeOther
	if !advice.Partitionable {
		advice.Observations = append(advice.Observations,
			fmt.Sprintf("column %q has dtype %s; not recommended for partitioning", column, advice.DType))
		return advice, nil
	}

	counts := make(map[table.Value]int)
	nonNull := 0
	nulls := 0
	for _, v := range col.Values {
		if v.IsNull() {
			nulls++
			continue
		}
		counts[v]++
		nonNull++
	}
	advice.Cardinality = len(counts)
	if nonNull == 0 {
		advice.Observations = append(advice.Observations, "column holds no non-null values")
		return advice, nil
	}

	if nulls > 0 {
		advice.Observations = append(advice.Observations,
			fmt.Sprintf("%d null values (%.1f%%); nulls can skew partitions over time", nulls,
				float64(nulls)/float64(len(col.Values))*100))
	}

	biggest := 0
	for _, c := range counts {
		if c > biggest {
			biggest = c
		}
	}
	advice.BiggestShare = float64(biggest) / float64(nonNull)

	// Skew factor is the biggest share over the mean share (1/cardinality).
	// 1.0 means perfectly even; 2.0 means the biggest group holds twice
	// the average.
	advice.SkewFactor = advice.BiggestShare * float64(advice.Cardinality)

	switch {
	case advice.SkewFactor > 5.0:
		advice.Score--
		advice.Observations = append(advice.Observations, "highly skewed distribution (score -1)")
	case advice.SkewFactor > 2.0:
		advice.Observations = append(advice.Observations, "moderately skewed distribution (score +0)")
	default:
		advice.Score++
		advice.Observations = append(advice.Observations, "low skew (score +1)")
	}

	switch {
	case advice.Cardinality < 100:
		advice.Observations = append(advice.Observations, "low cardinality (score +0)")
	case advice.Cardinality < 1000:
		advice.Score++
		advice.Observations = append(advice.Observations, "medium cardinality (score +1)")
	default:
		advice.Score--
		advice.Observations = append(advice.Observations, "high cardinality (score -1)")
	}

	return advice, nil
}
