package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"ads-etl/internal/core/domain"
)

// RunRepository is an in-memory implementation of port.RunRepository. It
// is used when no database is configured; runs live as long as the process.
type RunRepository struct {
	mu   sync.RWMutex
	runs map[string]domain.Run
}

// NewRunRepository creates an empty repository.
func NewRunRepository() *RunRepository {
	return &RunRepository{runs: make(map[string]domain.Run)}
}

// CreateRun stores a new run.
func (r *RunRepository) CreateRun(_ context.Context, run domain.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.runs[run.ID]; exists {
		return fmt.Errorf("run %s already exists", run.ID)
	}
	r.runs[run.ID] = clone(run)
	return nil
}

// FinishRun replaces a stored run with its final state.
func (r *RunRepository) FinishRun(_ context.Context, run domain.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.runs[run.ID]; !exists {
		return fmt.Errorf("%w: %s", domain.ErrRunNotFound, run.ID)
	}
	r.runs[run.ID] = clone(run)
	return nil
}

// GetRun returns a copy of a stored run.
func (r *RunRepository) GetRun(_ context.Context, id string) (*domain.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	run, exists := r.runs[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrRunNotFound, id)
	}
	out := clone(run)
	return &out, nil
}

// ListRuns returns up to limit runs, most recent first. Runs started at
// the same instant are ordered by ID.
func (r *RunRepository) ListRuns(_ context.Context, limit int) ([]domain.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Run, 0, len(r.runs))
	for _, run := range r.runs {
		out = append(out, clone(run))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].StartedAt.After(out[j].StartedAt)
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// clone copies the dataset slice so callers cannot alter stored state.
func clone(run domain.Run) domain.Run {
	if run.Datasets != nil {
		run.Datasets = append([]domain.DatasetStat(nil), run.Datasets...)
	}
	return run
}
