package domain

import (
	"fmt"
	"time"
)

// Kind is the scalar type held by a column.
type Kind string

const (
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	KindBool   Kind = "bool"
	KindString Kind = "string"
	KindTime   Kind = "time"
)

// Column describes one column of a Table.
type Column struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

// Table is an in-memory ordered collection of uniformly-columned rows.
// Each row holds one value per column, aligned with Columns. Values are
// int64, float64, bool, string, time.Time or nil for a missing cell.
//
// Tables are treated as immutable values: every method that changes
// content returns a new Table and leaves the receiver untouched.
type Table struct {
	Columns []Column
	Rows    [][]any
}

// NewTable builds a table from column definitions and rows. Rows are used
// as given; callers must not modify them afterwards.
func NewTable(columns []Column, rows [][]any) Table {
	return Table{Columns: columns, Rows: rows}
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// Names returns the column names in order.
func (t Table) Names() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// ColumnIndex returns the position of the named column.
func (t Table) ColumnIndex(name string) (int, bool) {
	for i, c := range t.Columns {
		if c.Name == name {
			return i, true
		}
	}
	return -1, false
}

// Value returns the cell at row r of the named column.
func (t Table) Value(r int, name string) (any, error) {
	idx, ok := t.ColumnIndex(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}
	if r < 0 || r >= len(t.Rows) {
		return nil, fmt.Errorf("row %d out of range [0,%d)", r, len(t.Rows))
	}
	return t.Rows[r][idx], nil
}

// ReplaceColumn returns a copy of the table where column idx holds values
// of the given kind. len(values) must equal t.Len().
func (t Table) ReplaceColumn(idx int, kind Kind, values []any) Table {
	columns := make([]Column, len(t.Columns))
	copy(columns, t.Columns)
	columns[idx].Kind = kind

	rows := make([][]any, len(t.Rows))
	for i, row := range t.Rows {
		next := make([]any, len(row))
		copy(next, row)
		next[idx] = values[i]
		rows[i] = next
	}
	return Table{Columns: columns, Rows: rows}
}

// Subset returns a table holding the rows at the given indexes, in the
// order given. The column set is unchanged.
func (t Table) Subset(indexes []int) Table {
	columns := make([]Column, len(t.Columns))
	copy(columns, t.Columns)

	rows := make([][]any, 0, len(indexes))
	for _, i := range indexes {
		rows = append(rows, t.Rows[i])
	}
	return Table{Columns: columns, Rows: rows}
}

// KindOf reports the Kind of a single cell value. ok is false for nil and
// for types a Table never holds.
func KindOf(v any) (kind Kind, ok bool) {
	switch v.(type) {
	case int64:
		return KindInt, true
	case float64:
		return KindFloat, true
	case bool:
		return KindBool, true
	case string:
		return KindString, true
	case time.Time:
		return KindTime, true
	default:
		return "", false
	}
}
