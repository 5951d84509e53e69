package filesource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/D-Vella/Data-Quality-Checker/domain/table"
)

// ErrUnsupportedFormat marks a file extension the reader cannot handle.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Reader loads tabular files into MemTables. The first row is always
// treated as the header.
type Reader struct {
	coercer *Coercer
}

// NewReader creates a reader with default coercion settings.
func NewReader() *Reader {
	return &Reader{coercer: NewCoercer(DefaultCoercionConfig())}
}

// NewReaderWithConfig creates a reader with custom coercion settings.
func NewReaderWithConfig(cfg CoercionConfig) *Reader {
	return &Reader{coercer: NewCoercer(cfg)}
}

// Read dispatches on the file extension (.csv or .xlsx).
func (r *Reader) Read(path string) (*table.MemTable, []ColumnReport, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return r.ReadCSVFile(path)
	case ".xlsx":
		return r.ReadXLSX(path)
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ReadCSVFile reads a CSV file from disk.
func (r *Reader) ReadCSVFile(path string) (*table.MemTable, []ColumnReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return r.ReadCSV(f)
}

// ReadCSV reads CSV content from a stream.
func (r *Reader) ReadCSV(src io.Reader) (*table.MemTable, []ColumnReport, error) {
	rows, err := csv.NewReader(src).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	return r.buildTable(rows)
}

// ReadXLSX reads the first sheet of an Excel workbook.
func (r *Reader) ReadXLSX(path string) (*table.MemTable, []ColumnReport, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, nil, fmt.Errorf("workbook %q has no sheets", path)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return r.buildTable(rows)
}

// buildTable turns header+records into a typed MemTable. Short rows are
// padded so every column keeps a uniform length.
func (r *Reader) buildTable(rows [][]string) (*table.MemTable, []ColumnReport, error) {
	if len(rows) == 0 {
		return nil, nil, errors.New("file has no header row")
	}
	headers := rows[0]
	records := rows[1:]

	cols := make([]table.Column, 0, len(headers))
	reports := make([]ColumnReport, 0, len(headers))
	for i, header := range headers {
		name := strings.TrimSpace(header)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		raw := make([]string, len(records))
		for j, rec := range records {
			if i < len(rec) {
				raw[j] = rec[i]
			}
		}
		col, report := r.coercer.CoerceColumn(name, raw)
		cols = append(cols, col)
		reports = append(reports, report)
	}

	t, err := table.New(cols...)
	if err != nil {
		return nil, nil, err
	}
	return t, reports, nil
}
