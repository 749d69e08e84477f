// Package tabular turns statement files into ordered rows of trimmed
// column name to cell value.
package tabular

import (
	"strings"
)

// Row is one data line of a table. Columns keeps the header order, and a
// column missing from values is absent (as opposed to present but empty).
type Row struct {
	columns []string
	values  map[string]string
}

// NewRow pairs header with cells. Cells beyond the header are dropped and
// header columns without a cell are left absent.
func NewRow(header []string, cells []string) Row {
	values := make(map[string]string, len(header))
	for i, column := range header {
		if i >= len(cells) {
			break
		}
		values[column] = cells[i]
	}
	return Row{columns: header, values: values}
}

// RowFromMap builds a row from a map, ordering columns as given.
func RowFromMap(columns []string, values map[string]string) Row {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return Row{columns: columns, values: copied}
}

// Columns returns the header in file order.
func (r Row) Columns() []string {
	return r.columns
}

// Get returns the cell of column and whether the row has it.
func (r Row) Get(column string) (string, bool) {
	v, ok := r.values[column]
	return v, ok
}

// Value returns the cell of column or "" when absent.
func (r Row) Value(column string) string {
	return r.values[column]
}

// IsEmpty reports whether every cell is blank.
func (r Row) IsEmpty() bool {
	for _, v := range r.values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Table is the materialized content of one input file.
type Table struct {
	Columns []string
	Rows    []Row
	// HeaderRow is the zero-based index of the line used as header.
	HeaderRow int
	// Source is the file the table was read from, when known.
	Source string
}

// HasColumn reports whether the header contains column.
func (t *Table) HasColumn(column string) bool {
	for _, c := range t.Columns {
		if c == column {
			return true
		}
	}
	return false
}
