package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"ads-etl/internal/adapter/transform"
	"ads-etl/internal/config/configs"
	"ads-etl/internal/core/domain"
	"ads-etl/internal/core/port"
)

// PipelineUseCase owns the dataset registry and drives the extract,
// validate and transform stages over it. It implements
// port.PipelineUseCase.
type PipelineUseCase struct {
	cfg       configs.Pipeline
	extractor port.Extractor
	runs      port.RunRepository
	logger    *slog.Logger

	// now is replaced in tests.
	now func() time.Time

	mu         sync.RWMutex
	datasets   map[string]domain.Table
	sources    map[string]string
	violations map[string]domain.Violations
}

// NewPipelineUseCase creates a use case with an empty registry.
func NewPipelineUseCase(cfg configs.Pipeline, extractor port.Extractor, runs port.RunRepository, logger *slog.Logger) *PipelineUseCase {
	return &PipelineUseCase{
		cfg:        cfg,
		extractor:  extractor,
		runs:       runs,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
		datasets:   make(map[string]domain.Table),
		sources:    make(map[string]string),
		violations: make(map[string]domain.Violations),
	}
}

// registry is the state produced by one run. It is swapped into the use
// case only when the run succeeds.
type registry struct {
	datasets   map[string]domain.Table
	sources    map[string]string
	violations map[string]domain.Violations
	stats      map[string]*domain.DatasetStat
}

// Run executes the pipeline once. Datasets are processed sequentially in
// name order. On failure the registry keeps its previous content and the
// run is recorded as failed.
func (u *PipelineUseCase) Run(ctx context.Context) (*domain.Run, error) {
	run := domain.Run{
		ID:        uuid.NewString(),
		StartedAt: u.now(),
		Status:    domain.RunRunning,
	}
	logger := u.logger.With(slog.String("run_id", run.ID))
	logger.Info("pipeline run started", slog.Int("datasets", len(u.cfg.Datasets)))

	if err := u.runs.CreateRun(ctx, run); err != nil {
		logger.Error("create run log entry", slog.Any("error", err))
	}

	reg, err := u.execute(ctx, logger)

	finished := u.now()
	run.FinishedAt = &finished
	for _, name := range u.cfg.Names() {
		if stat, ok := reg.stats[name]; ok {
			run.Datasets = append(run.Datasets, *stat)
		}
	}
	if err != nil {
		run.Status = domain.RunFailed
		run.Error = err.Error()
		logger.Error("pipeline run failed", slog.Any("error", err))
	} else {
		run.Status = domain.RunSucceeded
		u.mu.Lock()
		u.datasets, u.sources, u.violations = reg.datasets, reg.sources, reg.violations
		u.mu.Unlock()
		logger.Info("pipeline run finished", slog.Duration("duration", finished.Sub(run.StartedAt)))
	}

	// The run log is written with a fresh context so an interrupted run is
	// still recorded.
	if ferr := u.runs.FinishRun(context.WithoutCancel(ctx), run); ferr != nil {
		logger.Error("finish run log entry", slog.Any("error", ferr))
	}
	return &run, err
}

func (u *PipelineUseCase) execute(ctx context.Context, logger *slog.Logger) (*registry, error) {
	reg := &registry{
		datasets:   make(map[string]domain.Table),
		sources:    make(map[string]string),
		violations: make(map[string]domain.Violations),
		stats:      make(map[string]*domain.DatasetStat),
	}
	names := u.cfg.Names()

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return reg, err
		}
		src, _ := u.cfg.Source(name)
		table, err := u.extractor.Extract(src)
		if err != nil {
			return reg, fmt.Errorf("extract %s: %w", name, err)
		}
		reg.datasets[name] = table
		reg.sources[name] = src
		reg.stats[name] = &domain.DatasetStat{Name: name, Source: src, ExtractedRows: table.Len()}
		logger.Info("dataset extracted",
			slog.String("dataset", name),
			slog.String("source", src),
			slog.Int("rows", table.Len()))
	}

	if u.cfg.Validate {
		for _, name := range names {
			vs := transform.ValidateSchema(name, reg.datasets[name])
			reg.violations[name] = vs
			reg.stats[name].Violations = len(vs)
			if len(vs) > 0 {
				logger.Warn("schema violations",
					slog.String("dataset", name),
					slog.Int("count", len(vs)),
					slog.Any("error", vs.Err()))
			}
		}
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return reg, err
		}
		stat := reg.stats[name]
		out, err := u.transforms(stat).Apply(reg.datasets[name])
		if err != nil {
			return reg, fmt.Errorf("transform %s: %w", name, err)
		}
		reg.datasets[name] = out
		stat.RetainedRows = out.Len()
		logger.Info("dataset transformed",
			slog.String("dataset", name),
			slog.Int("rows", out.Len()),
			slog.Time("window_start", *stat.WindowStart),
			slog.Time("recent_day", *stat.RecentDay))
	}
	return reg, nil
}

// transforms returns the ordered transform list applied to every table.
// The window step only records the bounds into stat.
func (u *PipelineUseCase) transforms(stat *domain.DatasetStat) transform.Chain {
	column := u.cfg.DateColumn
	return transform.Chain{
		transform.CoerceDate(column, u.cfg.DateLayout),
		func(t domain.Table) (domain.Table, error) {
			from, to, err := transform.Window(t, column, u.cfg.WindowDays)
			if err != nil {
				return domain.Table{}, err
			}
			stat.WindowStart, stat.RecentDay = &from, &to
			return t, nil
		},
		transform.Recency(column, u.cfg.WindowDays),
	}
}

// RowCount returns the number of rows currently held for a dataset.
func (u *PipelineUseCase) RowCount(name string) (int, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	t, ok := u.datasets[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrDatasetNotFound, name)
	}
	return t.Len(), nil
}

// Dataset returns the current table of a dataset.
func (u *PipelineUseCase) Dataset(name string) (domain.Table, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	t, ok := u.datasets[name]
	if !ok {
		return domain.Table{}, fmt.Errorf("%w: %s", domain.ErrDatasetNotFound, name)
	}
	return t, nil
}

// Summaries describes every registry entry, sorted by name.
func (u *PipelineUseCase) Summaries() []domain.DatasetSummary {
	u.mu.RLock()
	defer u.mu.RUnlock()

	out := make([]domain.DatasetSummary, 0, len(u.datasets))
	for name := range u.datasets {
		out = append(out, u.summary(name))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Summary describes one registry entry.
func (u *PipelineUseCase) Summary(name string) (domain.DatasetSummary, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	if _, ok := u.datasets[name]; !ok {
		return domain.DatasetSummary{}, fmt.Errorf("%w: %s", domain.ErrDatasetNotFound, name)
	}
	return u.summary(name), nil
}

// summary must be called with u.mu held.
func (u *PipelineUseCase) summary(name string) domain.DatasetSummary {
	t := u.datasets[name]
	return domain.DatasetSummary{
		Name:    name,
		Source:  u.sources[name],
		Rows:    t.Len(),
		Columns: append([]domain.Column(nil), t.Columns...),
	}
}

// Violations returns the schema violations of a dataset recorded by the
// last successful run.
func (u *PipelineUseCase) Violations(name string) (domain.Violations, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	if _, ok := u.datasets[name]; !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrDatasetNotFound, name)
	}
	return u.violations[name], nil
}

// GetRun returns a run from the run log.
func (u *PipelineUseCase) GetRun(ctx context.Context, id string) (*domain.Run, error) {
	return u.runs.GetRun(ctx, id)
}

// ListRuns returns the most recent runs from the run log.
func (u *PipelineUseCase) ListRuns(ctx context.Context, limit int) ([]domain.Run, error) {
	return u.runs.ListRuns(ctx, limit)
}
