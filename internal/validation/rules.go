// Package validation implements the rule-evaluation engine: a fluent
// builder that accumulates column-scoped rules against a table, and the
// per-kind evaluators that turn each rule into a RuleResult.
package validation

import (
	"fmt"

	"github.com/D-Vella/Data-Quality-Checker/domain/quality"
	"github.com/D-Vella/Data-Quality-Checker/domain/table"
)

// outcome is the raw evaluation of one rule before indices are capped and
// examples extracted. failed holds every violating row position in
// ascending order.
type outcome struct {
	failed   []int
	mismatch bool
	detail   string
}

// evaluators dispatches by rule kind. The rule set is closed, so a fixed
// table beats open-ended polymorphism here.
var evaluators = map[quality.RuleKind]func(table.Column, quality.Rule) outcome{
	quality.RuleNotNull:        evalNotNull,
	quality.RulePositive:       evalPositive,
	quality.RuleUnique:         evalUnique,
	quality.RuleInSet:          evalInSet,
	quality.RuleMatchesPattern: evalMatches,
	quality.RuleMinValue:       evalMinValue,
	quality.RuleMaxValue:       evalMaxValue,
}

// Evaluate runs a single rule against its column and builds the result.
// Type mismatches are reported in the result, never as an error, so a
// batch of rules always runs to completion.
func Evaluate(t table.Table, rule quality.Rule) quality.RuleResult {
	col, ok := t.Column(rule.Column)
	if !ok {
		// The builder checks existence at declaration time; this can
		// only be hit when a Rule is constructed by hand against the
		// wrong table.
		return quality.RuleResult{
			ColumnName:   rule.Column,
			RuleKind:     rule.Kind,
			TypeMismatch: true,
			Message:      fmt.Sprintf("%s on %q: column not present in table", rule.Kind, rule.Column),
		}
	}

	eval, ok := evaluators[rule.Kind]
	if !ok {
		return quality.RuleResult{
			ColumnName:   rule.Column,
			RuleKind:     rule.Kind,
			TypeMismatch: true,
			Message:      fmt.Sprintf("%s on %q: unknown rule kind", rule.Kind, rule.Column),
		}
	}

	out := eval(col, rule)
	res := quality.RuleResult{
		ColumnName:  rule.Column,
		RuleKind:    rule.Kind,
		FailedCount: len(out.failed),
	}

	if out.mismatch {
		res.TypeMismatch = true
		res.FailedCount = 0
		res.Message = fmt.Sprintf("%s on %q: %s", rule.Kind, rule.Column, out.detail)
		return res
	}

	res.Passed = res.FailedCount == 0
	res.FailedIndices = out.failed
	if len(res.FailedIndices) > quality.MaxFailedIndices {
		res.FailedIndices = res.FailedIndices[:quality.MaxFailedIndices]
	}
	for _, idx := range out.failed {
		if len(res.FailedExamples) == quality.MaxFailedExamples {
			break
		}
		res.FailedExamples = append(res.FailedExamples, col.Values[idx])
	}

	if res.Passed {
		res.Message = fmt.Sprintf("%s on %q: all %d rows passed", rule.Kind, rule.Column, len(col.Values))
	} else {
		res.Message = fmt.Sprintf("%s on %q: %d of %d rows failed", rule.Kind, rule.Column, res.FailedCount, len(col.Values))
	}
	return res
}

func evalNotNull(col table.Column, _ quality.Rule) outcome {
	var out outcome
	for i, v := range col.Values {
		if v.IsNull() {
			out.failed = append(out.failed, i)
		}
	}
	return out
}

func evalPositive(col table.Column, _ quality.Rule) outcome {
	if col.DType() != table.DTypeNumeric {
		return outcome{mismatch: true, detail: fmt.Sprintf("column is %s, not numeric", col.DType())}
	}
	var out outcome
	for i, v := range col.Values {
		if f, ok := v.AsFloat(); ok && f <= 0 {
			out.failed = append(out.failed, i)
		}
	}
	return out
}

// evalUnique reports every position participating in a duplicate value
// group, including the first occurrence. Null cells are exempt.
func evalUnique(col table.Column, _ quality.Rule) outcome {
	counts := make(map[table.Value]int)
	for _, v := range col.Values {
		if !v.IsNull() {
			counts[v]++
		}
	}
	var out outcome
	for i, v := range col.Values {
		if !v.IsNull() && counts[v] > 1 {
			out.failed = append(out.failed, i)
		}
	}
	return out
}

func evalInSet(col table.Column, rule quality.Rule) outcome {
	var out outcome
	for i, v := range col.Values {
		if v.IsNull() {
			continue
		}
		if _, ok := rule.Allowed[v]; !ok {
			out.failed = append(out.failed, i)
		}
	}
	return out
}

func evalMatches(col table.Column, rule quality.Rule) outcome {
	if col.DType() != table.DTypeString {
		return outcome{mismatch: true, detail: fmt.Sprintf("column is %s, not string", col.DType())}
	}
	var out outcome
	for i, v := range col.Values {
		if s, ok := v.AsString(); ok && !rule.Pattern.MatchString(s) {
			out.failed = append(out.failed, i)
		}
	}
	return out
}

func evalMinValue(col table.Column, rule quality.Rule) outcome {
	if col.DType() != table.DTypeNumeric {
		return outcome{mismatch: true, detail: fmt.Sprintf("column is %s, not numeric", col.DType())}
	}
	var out outcome
	for i, v := range col.Values {
		if f, ok := v.AsFloat(); ok && f < rule.Bound {
			out.failed = append(out.failed, i)
		}
	}
	return out
}

func evalMaxValue(col table.Column, rule quality.Rule) outcome {
	if col.DType() != table.DTypeNumeric {
		return outcome{mismatch: true, detail: fmt.Sprintf("column is %s, not numeric", col.DType())}
	}
	var out outcome
	for i, v := range col.Values {
		if f, ok := v.AsFloat(); ok && f > rule.Bound {
			out.failed = append(out.failed, i)
		}
	}
	return out
}
