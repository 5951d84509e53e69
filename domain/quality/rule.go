package quality

import (
	"fmt"
	"math"
	"regexp"

	"github.com/D-Vella/Data-Quality-Checker/domain/table"
)

// RuleKind enumerates the closed set of predicate kinds.
type RuleKind string

const (
	RuleNotNull        RuleKind = "not_null"
	RulePositive       RuleKind = "positive"
	RuleUnique         RuleKind = "unique"
	RuleInSet          RuleKind = "in_set"
	RuleMatchesPattern RuleKind = "matches_pattern"
	RuleMinValue       RuleKind = "min_value"
	RuleMaxValue       RuleKind = "max_value"
)

// Rule is an immutable predicate specification bound to one column.
// Only the parameter fields selected by Kind are meaningful. Malformed
// parameters are rejected eagerly by the constructors; a Rule that exists
// is well-formed.
type Rule struct {
	Column  string
	Kind    RuleKind
	Allowed map[table.Value]struct{}
	Pattern *regexp.Regexp
	Bound   float64
}

// NewNotNullRule builds a not_null rule.
func NewNotNullRule(column string) Rule {
	return Rule{Column: column, Kind: RuleNotNull}
}

// NewPositiveRule builds a positive rule.
func NewPositiveRule(column string) Rule {
	return Rule{Column: column, Kind: RulePositive}
}

// NewUniqueRule builds a unique rule.
func NewUniqueRule(column string) Rule {
	return Rule{Column: column, Kind: RuleUnique}
}

// NewInSetRule builds an in_set rule over the allowed values. The set must
// not be empty; null markers in it are dropped since null cells are exempt
// from membership checking anyway.
func NewInSetRule(column string, allowed ...table.Value) (Rule, error) {
	set := make(map[table.Value]struct{}, len(allowed))
	for _, v := range allowed {
		if v.IsNull() {
			continue
		}
		set[v] = struct{}{}
	}
	if len(set) == 0 {
		return Rule{}, NewInvalidRuleError(RuleInSet, "allowed set is empty")
	}
	return Rule{Column: column, Kind: RuleInSet, Allowed: set}, nil
}

// NewMatchesRule builds a matches_pattern rule. The pattern is compiled
// eagerly and anchored so that the full string must match.
func NewMatchesRule(column, pattern string) (Rule, error) {
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return Rule{}, NewInvalidRuleError(RuleMatchesPattern, fmt.Sprintf("bad pattern %q: %v", pattern, err))
	}
	return Rule{Column: column, Kind: RuleMatchesPattern, Pattern: re}, nil
}

// NewMinValueRule builds a min_value rule. The bound must be a real number.
func NewMinValueRule(column string, bound float64) (Rule, error) {
	if math.IsNaN(bound) {
		return Rule{}, NewInvalidRuleError(RuleMinValue, "bound is NaN")
	}
	return Rule{Column: column, Kind: RuleMinValue, Bound: bound}, nil
}

// NewMaxValueRule builds a max_value rule. The bound must be a real number.
func NewMaxValueRule(column string, bound float64) (Rule, error) {
	if math.IsNaN(bound) {
		return Rule{}, NewInvalidRuleError(RuleMaxValue, "bound is NaN")
	}
	return Rule{Column: column, Kind: RuleMaxValue, Bound: bound}, nil
}
