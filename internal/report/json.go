package report

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/google/uuid"

	"github.com/D-Vella/Data-Quality-Checker/domain/quality"
)

// JSONReporter writes the structured serialization of profiles and
// validation results. Field names and nesting follow the domain/quality
// types; this shape is a stable contract for downstream tooling.
type JSONReporter struct {
	w      io.Writer
	indent int
}

// NewJSONReporter creates a JSON reporter writing to w with the given
// indentation width (0 for compact output).
func NewJSONReporter(w io.Writer, indent int) *JSONReporter {
	return &JSONReporter{w: w, indent: indent}
}

// profileDocument is the envelope for a profile report.
type profileDocument struct {
	Summary quality.Summary       `json:"summary"`
	Columns []quality.ColumnStats `json:"columns"`
}

// validationDocument is the envelope for a validation report. RunID
// identifies one execution so repeated runs can be told apart in logs and
// archives.
type validationDocument struct {
	RunID   string               `json:"run_id"`
	Summary validationSummary    `json:"summary"`
	Results []quality.RuleResult `json:"results"`
}

type validationSummary struct {
	Total   int  `json:"total"`
	Passed  int  `json:"passed"`
	Failed  int  `json:"failed"`
	Success bool `json:"success"`
}

// ReportProfile writes per-column statistics and the summary as one JSON
// document. Columns serialize in the given order; when order is nil, names
// are sorted.
func (r *JSONReporter) ReportProfile(profiles map[string]quality.ColumnStats, summary quality.Summary, order []string) error {
	if order == nil {
		for name := range profiles {
			order = append(order, name)
		}
		sort.Strings(order)
	}
	doc := profileDocument{Summary: summary, Columns: make([]quality.ColumnStats, 0, len(order))}
	for _, name := range order {
		if cs, ok := profiles[name]; ok {
			doc.Columns = append(doc.Columns, cs)
		}
	}
	return r.encode(doc)
}

// ReportValidation writes rule results with a run identifier and an
// aggregate pass/fail summary.
func (r *JSONReporter) ReportValidation(results []quality.RuleResult) error {
	passed := 0
	for _, res := range results {
		if res.Passed {
			passed++
		}
	}
	doc := validationDocument{
		RunID: uuid.NewString(),
		Summary: validationSummary{
			Total:   len(results),
			Passed:  passed,
			Failed:  len(results) - passed,
			Success: passed == len(results),
		},
		Results: results,
	}
	return r.encode(doc)
}

func (r *JSONReporter) encode(doc any) error {
	enc := json.NewEncoder(r.w)
	if r.indent > 0 {
		indent := make([]byte, r.indent)
		for i := range indent {
			indent[i] = ' '
		}
		enc.SetIndent("", string(indent))
	}
	return enc.Encode(doc)
}
