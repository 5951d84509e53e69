// Package report renders profiles and validation results. Two modes are
// recognized: human-readable console output with pass/fail symbols, and a
// structured JSON serialization whose field names follow the
// domain/quality types exactly.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/D-Vella/Data-Quality-Checker/domain/quality"
	"github.com/D-Vella/Data-Quality-Checker/internal/profiling"
)

var (
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// ConsoleReporter writes human-readable reports.
type ConsoleReporter struct {
	w io.Writer
}

// NewConsoleReporter creates a console reporter writing to w.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{w: w}
}

// ReportProfile prints per-column statistics and the table summary.
// Columns print in the given order; when order is nil, names are sorted.
func (r *ConsoleReporter) ReportProfile(profiles map[string]quality.ColumnStats, summary quality.Summary, order []string) error {
	if order == nil {
		for name := range profiles {
			order = append(order, name)
		}
		sort.Strings(order)
	}

	rule := strings.Repeat("=", 60)
	fmt.Fprintln(r.w, rule)
	fmt.Fprintln(r.w, headerStyle.Render("DATA PROFILE"))
	fmt.Fprintln(r.w, rule)
	fmt.Fprintf(r.w, "%d rows x %d columns, %d nulls total\n",
		summary.RowCount, summary.ColumnCount, summary.TotalNulls)

	for _, name := range order {
		cs, ok := profiles[name]
		if !ok {
			continue
		}
		fmt.Fprintf(r.w, "\n%s %s\n", headerStyle.Render("--- "+cs.ColumnName), mutedStyle.Render("("+string(cs.DType)+")"))
		fmt.Fprintf(r.w, "    non-null: %d / %d (%.2f%% null)\n", cs.Count-cs.NullCount, cs.Count, cs.NullPercentage)
		fmt.Fprintf(r.w, "    unique:   %d\n", cs.UniqueCount)
		if ns := cs.NumericStats; ns != nil {
			fmt.Fprintf(r.w, "    min: %g  max: %g  mean: %g  median: %g  std: %g\n",
				ns.Min, ns.Max, ns.Mean, ns.Median, ns.Std)
			fmt.Fprintf(r.w, "    skewness: %.4f  kurtosis: %.4f\n", ns.Skewness, ns.Kurtosis)
			if ns.Normality != nil {
				verdict := "looks normal"
				if !ns.Normality.IsNormal {
					verdict = "not normal"
				}
				fmt.Fprintf(r.w, "    normality: %s (JB=%.3f, p=%.4f)\n", verdict, ns.Normality.Statistic, ns.Normality.PValue)
			}
		}
		if ss := cs.StringStats; ss != nil {
			fmt.Fprintf(r.w, "    length: %d - %d (avg %.2f)\n", ss.MinLength, ss.MaxLength, ss.MeanLength)
		}
	}
	fmt.Fprintln(r.w, rule)
	return nil
}

// ReportValidation prints rule results with pass/fail symbols and a
// trailing summary line.
func (r *ConsoleReporter) ReportValidation(results []quality.RuleResult) error {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(r.w, rule)
	fmt.Fprintln(r.w, headerStyle.Render("VALIDATION RESULTS"))
	fmt.Fprintln(r.w, rule)

	passed := 0
	for _, res := range results {
		status := failStyle.Render("✗ FAIL")
		if res.Passed {
			status = passStyle.Render("✓ PASS")
			passed++
		}
		fmt.Fprintf(r.w, "%s [%s] %s\n", status, res.ColumnName, res.RuleKind)
		fmt.Fprintf(r.w, "       %s\n", res.Message)
		if !res.Passed && len(res.FailedExamples) > 0 {
			examples := make([]string, len(res.FailedExamples))
			for i, v := range res.FailedExamples {
				examples[i] = v.String()
			}
			fmt.Fprintf(r.w, "       examples: %s\n", mutedStyle.Render(strings.Join(examples, ", ")))
		}
	}

	fmt.Fprintln(r.w, strings.Repeat("-", 60))
	fmt.Fprintf(r.w, "SUMMARY: %d passed, %d failed, %d total\n", passed, len(results)-passed, len(results))
	fmt.Fprintln(r.w, rule)
	return nil
}

// ReportPartitionAdvice prints a partitioning recommendation.
func (r *ConsoleReporter) ReportPartitionAdvice(advice profiling.PartitionAdvice) error {
	fmt.Fprintf(r.w, "%s\n", headerStyle.Render("PARTITION ADVICE: "+advice.ColumnName))
	if !advice.Partitionable {
		fmt.Fprintln(r.w, "  not partitionable")
	} else {
		fmt.Fprintf(r.w, "  cardinality: %d  biggest share: %.2f%%  skew factor: %.2f\n",
			advice.Cardinality, advice.BiggestShare*100, advice.SkewFactor)
		fmt.Fprintf(r.w, "  score: %d / 2 (higher is better)\n", advice.Score)
	}
	for _, obs := range advice.Observations {
		fmt.Fprintf(r.w, "  - %s\n", obs)
	}
	return nil
}
