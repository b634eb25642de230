package port

import (
	"context"

	"ads-etl/internal/core/domain"
)

// RunRepository stores the audit log of pipeline runs. It is an outbound
// port; implementations must be safe for concurrent use.
type RunRepository interface {
	// CreateRun stores a new run in the running state.
	CreateRun(ctx context.Context, run domain.Run) error
	// FinishRun records the final status, error and dataset stats of a run.
	FinishRun(ctx context.Context, run domain.Run) error
	// GetRun returns a run by id or domain.ErrRunNotFound.
	GetRun(ctx context.Context, id string) (*domain.Run, error)
	// ListRuns returns up to limit runs, most recent first.
	ListRuns(ctx context.Context, limit int) ([]domain.Run, error)
}
