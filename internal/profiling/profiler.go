// Package profiling computes per-column statistics and table-level
// summaries over an in-memory columnar table. All computations are pure
// reads of the table snapshot; nothing is cached between calls.
package profiling

import (
	"context"
	"unicode/utf8"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/D-Vella/Data-Quality-Checker/domain/quality"
	"github.com/D-Vella/Data-Quality-Checker/domain/table"
)

// Profiler walks a table's columns and produces a ColumnStats per column
// plus a table-level summary.
type Profiler struct{}

// New creates a profiler.
func New() *Profiler {
	return &Profiler{}
}

// ProfileColumn computes the statistics for a single column. Empty and
// all-null columns degrade to stats with no numeric/string block; they
// never fail.
func (p *Profiler) ProfileColumn(col table.Column) quality.ColumnStats {
	cs := quality.ColumnStats{
		ColumnName: col.Name,
		Count:      len(col.Values),
		DType:      col.DType(),
	}

	distinct := make(map[table.Value]struct{})
	var numeric []float64
	var lengths []float64
	for _, v := range col.Values {
		if v.IsNull() {
			cs.NullCount++
			continue
		}
		distinct[v] = struct{}{}
		if f, ok := v.AsFloat(); ok {
			numeric = append(numeric, f)
		}
		if s, ok := v.AsString(); ok {
			lengths = append(lengths, float64(utf8.RuneCountInString(s)))
		}
	}
	cs.UniqueCount = len(distinct)
	if cs.Count > 0 {
		cs.NullPercentage = round2(float64(cs.NullCount) / float64(cs.Count) * 100)
	}

	switch cs.DType {
	case table.DTypeNumeric:
		cs.NumericStats = numericStats(numeric)
	case table.DTypeString:
		cs.StringStats = stringStats(lengths)
	}
	return cs
}

// ProfileAll profiles every column in the table, keyed by column name.
func (p *Profiler) ProfileAll(t table.Table) map[string]quality.ColumnStats {
	out := make(map[string]quality.ColumnStats)
	for _, name := range t.ColumnNames() {
		col, _ := t.Column(name)
		out[name] = p.ProfileColumn(col)
	}
	return out
}

// ProfileAllContext profiles columns concurrently with at most workers in
// flight. Each column is profiled independently and read-only; the result
// set is identical to ProfileAll regardless of completion order.
func (p *Profiler) ProfileAllContext(ctx context.Context, t table.Table, workers int) (map[string]quality.ColumnStats, error) {
	if workers < 1 {
		workers = 1
	}
	names := t.ColumnNames()
	profiles := make([]quality.ColumnStats, len(names))
	sem := semaphore.NewWeighted(int64(workers))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		col, _ := t.Column(name)
		g.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)
			profiles[i] = p.ProfileColumn(col)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	out := make(map[string]quality.ColumnStats, len(names))
	for i, name := range names {
		out[name] = profiles[i]
	}
	return out, nil
}

// Summary computes the table-level aggregate: row count, column count and
// the total null count across all columns.
func (p *Profiler) Summary(t table.Table) quality.Summary {
	s := quality.Summary{
		RowCount:    t.RowCount(),
		ColumnCount: len(t.ColumnNames()),
	}
	for _, name := range t.ColumnNames() {
		col, _ := t.Column(name)
		s.TotalNulls += col.NullCount()
	}
	return s
}

func numericStats(values []float64) *quality.NumericStats {
	if len(values) == 0 {
		return nil
	}
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)
	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)

	// Sample standard deviation (N-1 divisor); 0 for a single value.
	std := 0.0
	if len(values) > 1 {
		std, _ = stats.StandardDeviationSample(values)
	}

	ns := &quality.NumericStats{
		Min:    min,
		Max:    max,
		Mean:   mean,
		Median: median,
		Std:    std,
	}
	describeDistribution(values, std, ns)
	return ns
}

func stringStats(lengths []float64) *quality.StringStats {
	if len(lengths) == 0 {
		return nil
	}
	min, _ := stats.Min(lengths)
	max, _ := stats.Max(lengths)
	mean, _ := stats.Mean(lengths)
	return &quality.StringStats{
		MinLength:  int(min),
		MaxLength:  int(max),
		MeanLength: round2(mean),
	}
}

func round2(f float64) float64 {
	r, _ := stats.Round(f, 2)
	return r
}
