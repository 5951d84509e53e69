// Package rulespec loads declarative YAML rule suites and compiles them
// onto a validation builder, so that checks can be authored in files
// rather than code.
//
// Suite format:
//
//	version: "1"
//	checks:
//	  - column: customer_id
//	    rule: not_null
//	  - column: customer_id
//	    rule: unique
//	  - column: age
//	    rule: min_value
//	    value: 0
//	  - column: email
//	    rule: matches_pattern
//	    pattern: '.+@.+\..+'
//	  - column: status
//	    rule: in_set
//	    values: [active, inactive, pending]
package rulespec

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/D-Vella/Data-Quality-Checker/domain/quality"
	"github.com/D-Vella/Data-Quality-Checker/domain/table"
	"github.com/D-Vella/Data-Quality-Checker/internal/validation"
)

// Suite is a parsed rule file. Checks apply in file order, so results come
// back in the same order the file declares them.
type Suite struct {
	Version string  `yaml:"version"`
	Checks  []Check `yaml:"checks"`
}

// Check is one declarative rule.
type Check struct {
	Column  string   `yaml:"column"`
	Rule    string   `yaml:"rule"`
	Value   *float64 `yaml:"value,omitempty"`
	Pattern string   `yaml:"pattern,omitempty"`
	Values  []any    `yaml:"values,omitempty"`
}

// Load reads and parses a suite file.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite: %w", err)
	}
	return Parse(data)
}

// Parse parses suite YAML.
func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite: %w", err)
	}
	if len(s.Checks) == 0 {
		return nil, errors.New("suite declares no checks")
	}
	for i, c := range s.Checks {
		if c.Column == "" {
			return nil, fmt.Errorf("check %d: missing column", i)
		}
		if c.Rule == "" {
			return nil, fmt.Errorf("check %d: missing rule", i)
		}
	}
	return &s, nil
}

// Apply declares every check on the validator, in file order. Structural
// problems (unknown column, unknown rule name, malformed parameters)
// surface through the builder's sticky error.
func (s *Suite) Apply(v *validation.Validator) error {
	for i, c := range s.Checks {
		v.Column(c.Column)
		switch quality.RuleKind(c.Rule) {
		case quality.RuleNotNull:
			v.IsNotNull()
		case quality.RulePositive:
			v.IsPositive()
		case quality.RuleUnique:
			v.IsUnique()
		case quality.RuleInSet:
			allowed, err := cellValues(c.Values)
			if err != nil {
				return fmt.Errorf("check %d (%s on %q): %w", i, c.Rule, c.Column, err)
			}
			v.IsIn(allowed...)
		case quality.RuleMatchesPattern:
			v.Matches(c.Pattern)
		case quality.RuleMinValue:
			if c.Value == nil {
				return fmt.Errorf("check %d (%s on %q): missing value", i, c.Rule, c.Column)
			}
			v.MinValue(*c.Value)
		case quality.RuleMaxValue:
			if c.Value == nil {
				return fmt.Errorf("check %d (%s on %q): missing value", i, c.Rule, c.Column)
			}
			v.MaxValue(*c.Value)
		default:
			return fmt.Errorf("check %d: unknown rule %q", i, c.Rule)
		}
	}
	return v.Err()
}

func cellValues(raw []any) ([]table.Value, error) {
	out := make([]table.Value, 0, len(raw))
	for _, item := range raw {
		v, err := table.FromAny(item)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
