package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"ads-etl/internal/core/domain"
)

// fromRecords builds a table from string records whose first row is the
// header. Column types are detected from the values. A header without
// data rows yields an empty table whose columns are all strings.
func fromRecords(records [][]string) (domain.Table, error) {
	records = dropBlank(records)
	if len(records) == 0 {
		return domain.Table{}, errors.New("no header row")
	}
	records = pad(records, len(records[0]))
	if len(records) == 1 {
		return headerOnly(records[0]), nil
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
	)
	if df.Err != nil {
		return domain.Table{}, df.Err
	}
	return toTable(df)
}

func headerOnly(header []string) domain.Table {
	columns := make([]domain.Column, len(header))
	for j, name := range header {
		columns[j] = domain.Column{Name: name, Kind: domain.KindString}
	}
	return domain.NewTable(columns, [][]any{})
}

// toTable converts a dataframe into a domain table, keeping the detected
// column types. NA cells become nil.
func toTable(df dataframe.DataFrame) (domain.Table, error) {
	names := df.Names()
	types := df.Types()

	columns := make([]domain.Column, len(names))
	for j, name := range names {
		columns[j] = domain.Column{Name: name, Kind: kindOf(types[j])}
	}

	rows := make([][]any, df.Nrow())
	for i := range rows {
		row := make([]any, len(names))
		for j := range names {
			e := df.Elem(i, j)
			if e.IsNA() {
				continue
			}
			switch types[j] {
			case series.Int:
				v, err := e.Int()
				if err != nil {
					return domain.Table{}, fmt.Errorf("row %d column %q: %w", i, names[j], err)
				}
				row[j] = int64(v)
			case series.Float:
				row[j] = e.Float()
			case series.Bool:
				v, err := e.Bool()
				if err != nil {
					return domain.Table{}, fmt.Errorf("row %d column %q: %w", i, names[j], err)
				}
				row[j] = v
			default:
				row[j] = e.String()
			}
		}
		rows[i] = row
	}
	return domain.NewTable(columns, rows), nil
}

func kindOf(t series.Type) domain.Kind {
	switch t {
	case series.Int:
		return domain.KindInt
	case series.Float:
		return domain.KindFloat
	case series.Bool:
		return domain.KindBool
	default:
		return domain.KindString
	}
}

// dropBlank removes rows where every cell is empty. Spreadsheet readers
// return such rows for formatted but unused lines.
func dropBlank(records [][]string) [][]string {
	out := records[:0:0]
	for _, rec := range records {
		for _, cell := range rec {
			if strings.TrimSpace(cell) != "" {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}

// pad extends short rows to width with empty cells. Spreadsheet readers
// trim trailing empty cells.
func pad(records [][]string, width int) [][]string {
	for i, rec := range records {
		if len(rec) < width {
			padded := make([]string, width)
			copy(padded, rec)
			records[i] = padded
		} else if len(rec) > width {
			records[i] = rec[:width]
		}
	}
	return records
}
