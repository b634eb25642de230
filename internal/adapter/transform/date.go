package transform

import (
	"fmt"
	"strings"
	"time"

	"ads-etl/internal/core/domain"
)

// DateLayout is the default layout of date columns (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// CoerceDate parses the named string column into time values using
// layout. Numeric months and days in layout accept one or two digits, so
// both 2024-01-05 and 2024-1-5 parse with the default layout. Every value
// must match; a single bad value fails the whole table. Values that are
// already times are kept, so applying the transform twice yields the same
// table.
func CoerceDate(column, layout string) Func {
	layout = unpadded(layout)
	return func(t domain.Table) (domain.Table, error) {
		idx, ok := t.ColumnIndex(column)
		if !ok {
			return domain.Table{}, fmt.Errorf("coerce date: %w: %q", domain.ErrMissingColumn, column)
		}

		values := make([]any, t.Len())
		for i, row := range t.Rows {
			switch v := row[idx].(type) {
			case time.Time:
				values[i] = v
			case string:
				ts, err := time.Parse(layout, v)
				if err != nil {
					return domain.Table{}, fmt.Errorf("coerce date: row %d: %w", i, err)
				}
				values[i] = ts
			default:
				return domain.Table{}, fmt.Errorf("coerce date: row %d: cannot parse %v (%T) as date", i, v, v)
			}
		}
		return t.ReplaceColumn(idx, domain.KindTime, values), nil
	}
}

// unpadded swaps the zero-padded month and day elements for their
// variable-width forms, which still parse padded input.
func unpadded(layout string) string {
	return strings.NewReplacer("01", "1", "02", "2").Replace(layout)
}
