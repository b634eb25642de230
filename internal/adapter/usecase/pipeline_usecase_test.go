package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ads-etl/internal/adapter/extract"
	"ads-etl/internal/adapter/memory"
	"ads-etl/internal/adapter/transform"
	"ads-etl/internal/config/configs"
	"ads-etl/internal/core/domain"
	"ads-etl/internal/core/port/mocks"
	"ads-etl/internal/sample"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(dir string, datasets map[string]string) configs.Pipeline {
	return configs.Pipeline{
		DataDir:       dir,
		Datasets:      datasets,
		DateColumn:    "date",
		DateLayout:    transform.DateLayout,
		WindowDays:    transform.DefaultWindowDays,
		ReportDataset: "campaign_budget",
	}
}

func budgetTable(dates ...string) domain.Table {
	rows := make([][]any, len(dates))
	for i, d := range dates {
		rows[i] = []any{int64(i + 1), 100.0, d}
	}
	return domain.NewTable([]domain.Column{
		{Name: "campaign_id", Kind: domain.KindInt},
		{Name: "budget", Kind: domain.KindFloat},
		{Name: "date", Kind: domain.KindString},
	}, rows)
}

// countInWindow reads a generated CSV independently of the pipeline and
// counts rows dated in [max-61d, max).
func countInWindow(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	var dates []time.Time
	var latest time.Time
	for _, rec := range records[1:] {
		d, err := time.Parse("2006-01-02", rec[len(rec)-1])
		require.NoError(t, err)
		dates = append(dates, d)
		if d.After(latest) {
			latest = d
		}
	}
	from := latest.AddDate(0, 0, -61)
	n := 0
	for _, d := range dates {
		if !d.Before(from) && d.Before(latest) {
			n++
		}
	}
	return n
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	paths, err := sample.Seed(dir, sample.Options{
		Rows: 200,
		Days: 365,
		End:  time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		Seed: 42,
	})
	require.NoError(t, err)

	runs := memory.NewRunRepository()
	uc := NewPipelineUseCase(testConfig(dir, sample.Files), extract.NewExtractor(), runs, testLogger())

	run, err := uc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.RunSucceeded, run.Status)
	require.NotNil(t, run.FinishedAt)
	require.Len(t, run.Datasets, 3)

	for name, path := range paths {
		want := countInWindow(t, path)
		got, err := uc.RowCount(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}

	budget := run.Datasets[0]
	assert.Equal(t, "campaign_budget", budget.Name)
	assert.Equal(t, 200, budget.ExtractedRows)
	require.NotNil(t, budget.RecentDay)
	require.NotNil(t, budget.WindowStart)
	assert.Equal(t, budget.RecentDay.AddDate(0, 0, -61), *budget.WindowStart)

	table, err := uc.Dataset("campaign_budget")
	require.NoError(t, err)
	assert.Equal(t, budget.RetainedRows, table.Len())
	idx, ok := table.ColumnIndex("date")
	require.True(t, ok)
	assert.Equal(t, domain.KindTime, table.Columns[idx].Kind)
	for _, row := range table.Rows {
		d := row[idx].(time.Time)
		assert.False(t, d.Before(*budget.WindowStart))
		assert.True(t, d.Before(*budget.RecentDay))
	}

	stored, err := uc.GetRun(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RunSucceeded, stored.Status)

	summaries := uc.Summaries()
	require.Len(t, summaries, 3)
	assert.Equal(t, "campaign_budget", summaries[0].Name)
	assert.Equal(t, filepath.Join(dir, "campaign_budget.csv"), summaries[0].Source)
}

func TestRunUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	runs := memory.NewRunRepository()
	cfg := testConfig(dir, map[string]string{"campaign_budget": "campaign_budget.json"})
	uc := NewPipelineUseCase(cfg, extract.NewExtractor(), runs, testLogger())

	run, err := uc.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	assert.Equal(t, domain.RunFailed, run.Status)
	assert.Contains(t, run.Error, "campaign_budget")

	stored, err := runs.GetRun(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RunFailed, stored.Status)

	_, err = uc.RowCount("campaign_budget")
	assert.ErrorIs(t, err, domain.ErrDatasetNotFound)
}

func TestRunHeaderOnlyFileFailsWithEmptyTable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "campaign_budget.csv"), []byte("campaign_id,budget,date\n"), 0o644))
	runs := memory.NewRunRepository()
	cfg := testConfig(dir, map[string]string{"campaign_budget": "campaign_budget.csv"})
	uc := NewPipelineUseCase(cfg, extract.NewExtractor(), runs, testLogger())

	run, err := uc.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyTable)
	assert.Contains(t, err.Error(), "transform campaign_budget")
	assert.Equal(t, domain.RunFailed, run.Status)
	require.Len(t, run.Datasets, 1)
	assert.Equal(t, 0, run.Datasets[0].ExtractedRows)
}

func TestRunMalformedDateFailsRun(t *testing.T) {
	dir := t.TempDir()
	extractor := mocks.NewMockExtractor(t)
	runs := mocks.NewMockRunRepository(t)
	cfg := testConfig(dir, map[string]string{"campaign_budget": "b.csv"})

	extractor.EXPECT().
		Extract(filepath.Join(dir, "b.csv")).
		Return(budgetTable("2024-01-14", "15-01-2024"), nil)
	runs.EXPECT().
		CreateRun(mock.Anything, mock.AnythingOfType("domain.Run")).
		Return(nil)
	runs.EXPECT().
		FinishRun(mock.Anything, mock.MatchedBy(func(r domain.Run) bool {
			return r.Status == domain.RunFailed && r.Error != ""
		})).
		Return(nil)

	uc := NewPipelineUseCase(cfg, extractor, runs, testLogger())
	_, err := uc.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transform campaign_budget")

	_, err = uc.RowCount("campaign_budget")
	assert.ErrorIs(t, err, domain.ErrDatasetNotFound)
}

func TestRunRecordsViolations(t *testing.T) {
	dir := t.TempDir()
	extractor := mocks.NewMockExtractor(t)
	runs := memory.NewRunRepository()
	cfg := testConfig(dir, map[string]string{"campaign_budget": "b.csv"})
	cfg.Validate = true

	table := budgetTable("2024-03-01", "2024-03-02", "2024-03-03")
	table.Rows[1][1] = "n/a"
	extractor.EXPECT().Extract(mock.Anything).Return(table, nil)

	uc := NewPipelineUseCase(cfg, extractor, runs, testLogger())
	run, err := uc.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, run.Datasets, 1)
	assert.Equal(t, 1, run.Datasets[0].Violations)

	vs, err := uc.Violations("campaign_budget")
	require.NoError(t, err)
	require.Len(t, vs, 1)
	assert.Equal(t, "budget", vs[0].Column)
	assert.Equal(t, 1, vs[0].Row)

	// not enforced: the row still flows through the transforms
	count, err := uc.RowCount("campaign_budget")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRunLogFailuresDoNotFailRun(t *testing.T) {
	dir := t.TempDir()
	extractor := mocks.NewMockExtractor(t)
	runs := mocks.NewMockRunRepository(t)
	cfg := testConfig(dir, map[string]string{"campaign_budget": "b.csv"})

	extractor.EXPECT().Extract(mock.Anything).Return(budgetTable("2024-03-01", "2024-03-02"), nil)
	runs.EXPECT().CreateRun(mock.Anything, mock.Anything).Return(errors.New("connection refused"))
	runs.EXPECT().FinishRun(mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	uc := NewPipelineUseCase(cfg, extractor, runs, testLogger())
	run, err := uc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.RunSucceeded, run.Status)

	count, err := uc.RowCount("campaign_budget")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRunCanceledContextIsStillLogged(t *testing.T) {
	runs := mocks.NewMockRunRepository(t)
	extractor := mocks.NewMockExtractor(t)
	cfg := testConfig(t.TempDir(), map[string]string{"campaign_budget": "b.csv"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runs.EXPECT().CreateRun(mock.Anything, mock.Anything).Return(nil)
	runs.EXPECT().
		FinishRun(mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil }), mock.Anything).
		Return(nil)

	uc := NewPipelineUseCase(cfg, extractor, runs, testLogger())
	_, err := uc.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRegistryLookupsUnknownDataset(t *testing.T) {
	uc := NewPipelineUseCase(testConfig(t.TempDir(), nil), extract.NewExtractor(), memory.NewRunRepository(), testLogger())

	_, err := uc.RowCount("campaign_budget")
	assert.ErrorIs(t, err, domain.ErrDatasetNotFound)
	_, err = uc.Summary("campaign_budget")
	assert.ErrorIs(t, err, domain.ErrDatasetNotFound)
	_, err = uc.Violations("campaign_budget")
	assert.ErrorIs(t, err, domain.ErrDatasetNotFound)
	_, err = uc.Dataset("campaign_budget")
	assert.ErrorIs(t, err, domain.ErrDatasetNotFound)
	assert.Empty(t, uc.Summaries())
}
