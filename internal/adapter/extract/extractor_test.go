package extract

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"ads-etl/internal/core/domain"
)

const budgetCSV = `campaign_id,budget,date
1,1500.5,2024-01-01
2,200.25,2024-01-02
3,75.0,2024-01-03
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExtractCSV(t *testing.T) {
	path := writeFile(t, "campaign_budget.csv", budgetCSV)

	table, err := NewExtractor().Extract(path)
	require.NoError(t, err)

	assert.Equal(t, 3, table.Len())
	assert.Equal(t, []string{"campaign_id", "budget", "date"}, table.Names())
	assert.Equal(t, []domain.Column{
		{Name: "campaign_id", Kind: domain.KindInt},
		{Name: "budget", Kind: domain.KindFloat},
		{Name: "date", Kind: domain.KindString},
	}, table.Columns)
	assert.Equal(t, []any{int64(2), 200.25, "2024-01-02"}, table.Rows[1])
}

func TestExtractExtensionIsCaseInsensitive(t *testing.T) {
	path := writeFile(t, "CAMPAIGN_BUDGET.CSV", budgetCSV)

	table, err := NewExtractor().Extract(path)
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())
}

func TestExtractXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"checkout_id", "is_checkout", "qty", "unit_price", "date"},
		{10, 1, 2, 9.99, "2024-02-01"},
		{11, 0, 1, 4.5, "2024-02-02"},
		{},
		{12, 1, 5, 1.25, "2024-02-03"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	path := filepath.Join(t.TempDir(), "product_checkout.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	table, err := NewExtractor().Extract(path)
	require.NoError(t, err)

	assert.Equal(t, 3, table.Len())
	assert.Equal(t, []string{"checkout_id", "is_checkout", "qty", "unit_price", "date"}, table.Names())

	qty, err := table.Value(2, "qty")
	require.NoError(t, err)
	assert.Equal(t, int64(5), qty)

	price, err := table.Value(0, "unit_price")
	require.NoError(t, err)
	assert.Equal(t, 9.99, price)
}

func TestExtractXLS(t *testing.T) {
	fixture, err := os.ReadFile(filepath.Join("testdata", "product_checkout.xls"))
	require.NoError(t, err)

	for _, name := range []string{"product_checkout.xls", "PRODUCT_CHECKOUT.XLS"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, os.WriteFile(path, fixture, 0o644))

			table, err := NewExtractor().Extract(path)
			require.NoError(t, err)

			// Row 3 of the sheet is absent and must not produce a record.
			assert.Equal(t, 3, table.Len())
			assert.Equal(t, []domain.Column{
				{Name: "checkout_id", Kind: domain.KindInt},
				{Name: "is_checkout", Kind: domain.KindInt},
				{Name: "qty", Kind: domain.KindInt},
				{Name: "unit_price", Kind: domain.KindFloat},
				{Name: "date", Kind: domain.KindString},
			}, table.Columns)
			assert.Equal(t, []any{int64(11), int64(0), int64(1), 4.5, "2024-02-02"}, table.Rows[1])
		})
	}
}

func TestExtractHeaderOnly(t *testing.T) {
	header := []string{"campaign_id", "budget", "date"}

	xlsx := func(t *testing.T) string {
		f := excelize.NewFile()
		row := []any{"campaign_id", "budget", "date"}
		require.NoError(t, f.SetSheetRow(f.GetSheetName(0), "A1", &row))
		path := filepath.Join(t.TempDir(), "campaign_budget.xlsx")
		require.NoError(t, f.SaveAs(path))
		require.NoError(t, f.Close())
		return path
	}

	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{name: "csv", path: func(t *testing.T) string {
			return writeFile(t, "campaign_budget.csv", "campaign_id,budget,date\n")
		}},
		{name: "csv with trailing blank line", path: func(t *testing.T) string {
			return writeFile(t, "campaign_budget.csv", "campaign_id,budget,date\n\n")
		}},
		{name: "xlsx", path: xlsx},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewExtractor().Extract(tt.path(t))
			require.NoError(t, err)

			assert.Equal(t, 0, table.Len())
			assert.Equal(t, header, table.Names())
			for _, c := range table.Columns {
				assert.Equal(t, domain.KindString, c.Kind)
			}
		})
	}
}

func TestExtractEmptyFile(t *testing.T) {
	_, err := NewExtractor().Extract(writeFile(t, "campaign_budget.csv", ""))
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestExtractUnsupportedFormat(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "json", path: "data/campaign_budget.json"},
		{name: "parquet", path: "data/campaign_budget.parquet"},
		{name: "no extension", path: "data/campaign_budget"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewExtractor().Extract(tt.path)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)

			var ufe *domain.UnsupportedFormatError
			require.True(t, errors.As(err, &ufe))
			assert.Equal(t, tt.path, ufe.Path)
			assert.Equal(t, 0, table.Len())
		})
	}
}

func TestExtractMissingFile(t *testing.T) {
	_, err := NewExtractor().Extract(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NotErrorIs(t, err, domain.ErrUnsupportedFormat)
}
