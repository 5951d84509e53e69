// Package quality holds the data model shared by the profiler, the
// validation engine and the reporters: per-column statistics, table
// summaries, rule specifications and rule outcomes. The JSON field names
// on these types are a stable contract for the structured report mode.
package quality

import (
	"github.com/D-Vella/Data-Quality-Checker/domain/table"
)

// NumericStats describes the non-null values of a numeric column.
// Std is the sample standard deviation (N-1 divisor); it is 0 when the
// column has fewer than two non-null values.
type NumericStats struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	Std      float64 `json:"std"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`

	// Normality is set only when the sample is large enough for the
	// Jarque-Bera check to be meaningful.
	Normality *NormalityCheck `json:"normality,omitempty"`
}

// NormalityCheck is the outcome of a Jarque-Bera test on a numeric column.
type NormalityCheck struct {
	Statistic float64 `json:"statistic"`
	PValue    float64 `json:"p_value"`
	IsNormal  bool    `json:"is_normal"`
}

// StringStats describes the non-null values of a string column. Lengths
// are character (rune) counts, not byte counts.
type StringStats struct {
	MinLength  int     `json:"min_length"`
	MaxLength  int     `json:"max_length"`
	MeanLength float64 `json:"mean_length"`
}

// ColumnStats holds the computed profile of one column. At most one of
// NumericStats and StringStats is set, chosen by DType; a column with no
// non-null values carries neither.
type ColumnStats struct {
	ColumnName     string        `json:"column_name"`
	Count          int           `json:"count"`
	NullCount      int           `json:"null_count"`
	NullPercentage float64       `json:"null_percentage"`
	UniqueCount    int           `json:"unique_count"`
	DType          table.DType   `json:"dtype"`
	NumericStats   *NumericStats `json:"numeric_stats,omitempty"`
	StringStats    *StringStats  `json:"string_stats,omitempty"`
}

// Summary is the table-level aggregate. It is recomputed on every call and
// never cached.
type Summary struct {
	RowCount    int `json:"row_count"`
	ColumnCount int `json:"column_count"`
	TotalNulls  int `json:"total_nulls"`
}

// RuleResult is the outcome of evaluating one Rule against the table's
// current data. It is created by rule evaluation and never mutated.
//
// FailedIndices is an ascending prefix capped at MaxFailedIndices;
// FailedCount always reports the true total. FailedExamples carries up to
// MaxFailedExamples offending cell values for human consumption.
//
// TypeMismatch marks a rule that could not be applied to its column's
// logical type at all. Such a result has Passed=false and FailedCount=0;
// for every other result Passed is true iff FailedCount == 0.
type RuleResult struct {
	ColumnName     string        `json:"column_name"`
	RuleKind       RuleKind      `json:"rule_kind"`
	Passed         bool          `json:"passed"`
	FailedCount    int           `json:"failed_count"`
	FailedIndices  []int         `json:"failed_indices"`
	FailedExamples []table.Value `json:"failed_examples,omitempty"`
	TypeMismatch   bool          `json:"type_mismatch,omitempty"`
	Message        string        `json:"message"`
}

// Caps bounding the size of a RuleResult regardless of table size.
const (
	// MaxFailedIndices bounds the retained prefix of failing row
	// positions.
	MaxFailedIndices = 100
	// MaxFailedExamples bounds the retained offending values.
	MaxFailedExamples = 5
)
