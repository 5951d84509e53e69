// Package filesource reads CSV and Excel files into the in-memory table
// model, coercing raw string cells to typed values deterministically.
package filesource

import (
	"strconv"
	"strings"

	"github.com/D-Vella/Data-Quality-Checker/domain/table"
)

// CoercionConfig defines the thresholds that decide a column's logical
// type from its raw cells.
type CoercionConfig struct {
	// NumericThreshold is the share of non-null cells that must parse as
	// numbers for the column to coerce to numeric.
	NumericThreshold float64
	// BooleanThreshold is the share of non-null cells that must parse as
	// booleans for the column to coerce to boolean. Checked before
	// numeric, since "1"/"0" parse as both.
	BooleanThreshold float64
	// NullMarkers are the raw cell spellings treated as the null marker,
	// compared after trimming.
	NullMarkers []string
}

// DefaultCoercionConfig mirrors common ingestion defaults: 80% numeric,
// 90% boolean.
func DefaultCoercionConfig() CoercionConfig {
	return CoercionConfig{
		NumericThreshold: 0.8,
		BooleanThreshold: 0.9,
		NullMarkers:      []string{"", "null", "NULL", "NA", "N/A", "NaN", "nan"},
	}
}

// Coercer converts raw string columns into typed columns.
type Coercer struct {
	cfg   CoercionConfig
	nulls map[string]struct{}
}

// NewCoercer creates a coercer with the given config.
func NewCoercer(cfg CoercionConfig) *Coercer {
	nulls := make(map[string]struct{}, len(cfg.NullMarkers))
	for _, m := range cfg.NullMarkers {
		nulls[m] = struct{}{}
	}
	return &Coercer{cfg: cfg, nulls: nulls}
}

// ColumnReport records what coercion did to one column.
type ColumnReport struct {
	Column string      `json:"column"`
	DType  table.DType `json:"dtype"`
	// Dropped counts non-null cells that did not parse as the chosen
	// type and were turned into null markers.
	Dropped int `json:"dropped"`
}

// CoerceColumn decides the column's logical type from parse ratios and
// converts every cell. Cells that do not parse as the chosen type become
// null markers; the report counts them.
func (c *Coercer) CoerceColumn(name string, raw []string) (table.Column, ColumnReport) {
	nonNull := 0
	numericCount := 0
	boolCount := 0
	for _, cell := range raw {
		trimmed := strings.TrimSpace(cell)
		if c.isNull(trimmed) {
			continue
		}
		nonNull++
		if _, ok := parseNumeric(trimmed); ok {
			numericCount++
		}
		if _, ok := parseBool(trimmed); ok {
			boolCount++
		}
	}

	dtype := table.DTypeString
	if nonNull > 0 {
		boolRatio := float64(boolCount) / float64(nonNull)
		numericRatio := float64(numericCount) / float64(nonNull)
		switch {
		case boolRatio >= c.cfg.BooleanThreshold:
			dtype = table.DTypeBoolean
		case numericRatio >= c.cfg.NumericThreshold:
			dtype = table.DTypeNumeric
		}
	}

	col := table.Column{Name: name, Declared: dtype, Values: make([]table.Value, len(raw))}
	report := ColumnReport{Column: name, DType: dtype}
	for i, cell := range raw {
		trimmed := strings.TrimSpace(cell)
		if c.isNull(trimmed) {
			col.Values[i] = table.Null()
			continue
		}
		switch dtype {
		case table.DTypeBoolean:
			if b, ok := parseBool(trimmed); ok {
				col.Values[i] = table.NewBool(b)
			} else {
				col.Values[i] = table.Null()
				report.Dropped++
			}
		case table.DTypeNumeric:
			if f, ok := parseNumeric(trimmed); ok {
				col.Values[i] = table.NewNumeric(f)
			} else {
				col.Values[i] = table.Null()
				report.Dropped++
			}
		default:
			col.Values[i] = table.NewString(trimmed)
		}
	}
	return col, report
}

func (c *Coercer) isNull(trimmed string) bool {
	_, ok := c.nulls[trimmed]
	return ok
}

// parseNumeric accepts plain decimal notation plus thousands separators
// and a leading currency symbol.
func parseNumeric(s string) (float64, bool) {
	clean := strings.TrimLeft(s, "$€£")
	clean = strings.ReplaceAll(clean, ",", "")
	f, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true", "yes", "y":
		return true, true
	case "false", "no", "n":
		return false, true
	default:
		return false, false
	}
}
