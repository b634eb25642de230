package port

import (
	"context"

	"ads-etl/internal/core/domain"
)

// PipelineUseCase defines the operations exposed by the pipeline
// orchestrator. It is the primary port used by main and the report API.
type PipelineUseCase interface {
	// Run extracts every configured dataset, applies the transform chain
	// to each table and replaces the registry entries with the results.
	// The returned run is also stored in the run log.
	Run(ctx context.Context) (*domain.Run, error)

	// RowCount returns the current number of rows of a dataset.
	RowCount(name string) (int, error)

	// Summaries describes every registry entry, sorted by name.
	Summaries() []domain.DatasetSummary

	// Summary describes a single registry entry.
	Summary(name string) (domain.DatasetSummary, error)

	// Violations returns schema violations recorded for a dataset during
	// the last run. It is empty when validation is disabled.
	Violations(name string) (domain.Violations, error)

	GetRun(ctx context.Context, id string) (*domain.Run, error)
	ListRuns(ctx context.Context, limit int) ([]domain.Run, error)
}
