package transform

import (
	"fmt"
	"time"

	"ads-etl/internal/core/domain"
)

// DefaultWindowDays is the length of the recency window.
const DefaultWindowDays = 61

// Window returns the recency window of a table: to is the maximum value
// of the time column and from is to minus days. The table must be
// non-empty and the column must already hold times.
func Window(t domain.Table, column string, days int) (from, to time.Time, err error) {
	idx, ok := t.ColumnIndex(column)
	if !ok {
		return from, to, fmt.Errorf("recency window: %w: %q", domain.ErrMissingColumn, column)
	}
	if t.Len() == 0 {
		return from, to, fmt.Errorf("recency window: %w", domain.ErrEmptyTable)
	}
	for i, row := range t.Rows {
		ts, ok := row[idx].(time.Time)
		if !ok {
			return from, to, fmt.Errorf("recency window: row %d: %v (%T) is not a date", i, row[idx], row[idx])
		}
		if i == 0 || ts.After(to) {
			to = ts
		}
	}
	return to.AddDate(0, 0, -days), to, nil
}

// Recency keeps the rows whose date falls in [recent-days, recent), where
// recent is the latest date of the table itself. The most recent day is
// excluded. Row order and columns are preserved.
func Recency(column string, days int) Func {
	return func(t domain.Table) (domain.Table, error) {
		from, to, err := Window(t, column, days)
		if err != nil {
			return domain.Table{}, err
		}
		idx, _ := t.ColumnIndex(column)

		keep := make([]int, 0, t.Len())
		for i, row := range t.Rows {
			ts := row[idx].(time.Time)
			if !ts.Before(from) && ts.Before(to) {
				keep = append(keep, i)
			}
		}
		return t.Subset(keep), nil
	}
}
