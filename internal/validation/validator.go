package validation

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/D-Vella/Data-Quality-Checker/domain/quality"
	"github.com/D-Vella/Data-Quality-Checker/domain/table"
)

// Validator is the fluent rule builder. Column selects the cursor column
// for subsequent predicate calls; each predicate appends one Rule and
// returns the builder for chaining.
//
// Structural mistakes (unknown column, predicate before any Column call,
// malformed parameters) are checked at the call site and make the builder
// sticky: further chain calls no-op and Run returns the first such error.
// Run does not clear accumulated rules, so a builder stays reusable for
// further accumulation after execution.
//
// A Validator is owned by a single caller and is not safe for concurrent
// mutation.
type Validator struct {
	tbl     table.Table
	current string
	rules   []quality.Rule
	err     error
}

// New creates a validator bound to one table.
func New(t table.Table) *Validator {
	return &Validator{tbl: t}
}

// Column sets the cursor to name. The column must exist in the table
// schema; the check happens here, not at Run.
func (v *Validator) Column(name string) *Validator {
	if v.err != nil {
		return v
	}
	if _, ok := v.tbl.Column(name); !ok {
		v.err = quality.NewColumnNotFoundError(name)
		return v
	}
	v.current = name
	return v
}

// IsNotNull requires the cursor column to contain no null markers.
func (v *Validator) IsNotNull() *Validator {
	return v.append(quality.RuleNotNull, func(col string) (quality.Rule, error) {
		return quality.NewNotNullRule(col), nil
	})
}

// IsPositive requires non-null numeric values to be > 0.
func (v *Validator) IsPositive() *Validator {
	return v.append(quality.RulePositive, func(col string) (quality.Rule, error) {
		return quality.NewPositiveRule(col), nil
	})
}

// IsUnique requires non-null values to be pairwise distinct.
func (v *Validator) IsUnique() *Validator {
	return v.append(quality.RuleUnique, func(col string) (quality.Rule, error) {
		return quality.NewUniqueRule(col), nil
	})
}

// IsIn requires non-null values to be members of the allowed set.
func (v *Validator) IsIn(allowed ...table.Value) *Validator {
	return v.append(quality.RuleInSet, func(col string) (quality.Rule, error) {
		return quality.NewInSetRule(col, allowed...)
	})
}

// Matches requires non-null string values to fully match pattern.
func (v *Validator) Matches(pattern string) *Validator {
	return v.append(quality.RuleMatchesPattern, func(col string) (quality.Rule, error) {
		return quality.NewMatchesRule(col, pattern)
	})
}

// MinValue requires non-null numeric values to be >= bound.
func (v *Validator) MinValue(bound float64) *Validator {
	return v.append(quality.RuleMinValue, func(col string) (quality.Rule, error) {
		return quality.NewMinValueRule(col, bound)
	})
}

// MaxValue requires non-null numeric values to be <= bound.
func (v *Validator) MaxValue(bound float64) *Validator {
	return v.append(quality.RuleMaxValue, func(col string) (quality.Rule, error) {
		return quality.NewMaxValueRule(col, bound)
	})
}

func (v *Validator) append(kind quality.RuleKind, build func(col string) (quality.Rule, error)) *Validator {
	if v.err != nil {
		return v
	}
	if v.current == "" {
		v.err = quality.NewNoColumnSelectedError(kind)
		return v
	}
	rule, err := build(v.current)
	if err != nil {
		v.err = err
		return v
	}
	v.rules = append(v.rules, rule)
	return v
}

// Err returns the first structural error recorded by the chain, if any.
func (v *Validator) Err() error {
	return v.err
}

// Rules returns a copy of the accumulated rules in declaration order.
func (v *Validator) Rules() []quality.Rule {
	out := make([]quality.Rule, len(v.rules))
	copy(out, v.rules)
	return out
}

// Run evaluates every accumulated rule against the table and returns one
// RuleResult per rule, in declaration order. Accumulated rules are kept,
// so running twice without declaring more rules yields identical output.
func (v *Validator) Run() ([]quality.RuleResult, error) {
	if v.err != nil {
		return nil, v.err
	}
	results := make([]quality.RuleResult, len(v.rules))
	for i, rule := range v.rules {
		results[i] = Evaluate(v.tbl, rule)
	}
	return results, nil
}

// RunContext evaluates rules concurrently with at most workers in flight.
// Each rule reads the table independently; results land in pre-assigned
// slots, so ordering matches declaration order regardless of completion
// order.
func (v *Validator) RunContext(ctx context.Context, workers int) ([]quality.RuleResult, error) {
	if v.err != nil {
		return nil, v.err
	}
	if workers < 1 {
		workers = 1
	}
	results := make([]quality.RuleResult, len(v.rules))
	sem := semaphore.NewWeighted(int64(workers))
	g, ctx := errgroup.WithContext(ctx)
	for i, rule := range v.rules {
		g.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)
			results[i] = Evaluate(v.tbl, rule)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
