package quality

import (
	"errors"
	"fmt"
)

// Structural errors abort rule declaration immediately: they indicate a
// programming mistake in how the rule chain was authored, not a data
// problem. Data-shape problems (a predicate applied to a column whose
// contents cannot support it) are never errors; they surface as a failing
// RuleResult so the rest of a batch still runs.
var (
	ErrColumnNotFound   = errors.New("column not found")
	ErrNoColumnSelected = errors.New("no column selected")
	ErrInvalidRule      = errors.New("invalid rule")
)

// NewColumnNotFoundError reports a reference to a column absent from the
// table schema.
func NewColumnNotFoundError(name string) error {
	return fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}

// NewNoColumnSelectedError reports a predicate chained before any column
// selection.
func NewNoColumnSelectedError(kind RuleKind) error {
	return fmt.Errorf("%w: %s declared before column()", ErrNoColumnSelected, kind)
}

// NewInvalidRuleError reports malformed rule parameters.
func NewInvalidRuleError(kind RuleKind, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidRule, kind, reason)
}

// IsColumnNotFound reports whether err is a column reference failure.
func IsColumnNotFound(err error) bool {
	return errors.Is(err, ErrColumnNotFound)
}

// IsNoColumnSelected reports whether err is a missing column selection.
func IsNoColumnSelected(err error) bool {
	return errors.Is(err, ErrNoColumnSelected)
}

// IsInvalidRule reports whether err is a malformed-parameter failure.
func IsInvalidRule(err error) bool {
	return errors.Is(err, ErrInvalidRule)
}
