package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ads-etl/internal/core/domain"
)

// RunRepository implements port.RunRepository using pgxpool for PostgreSQL.
type RunRepository struct {
	pool *pgxpool.Pool
}

// NewRunRepository returns a new repository instance.
func NewRunRepository(pool *pgxpool.Pool) *RunRepository {
	return &RunRepository{pool: pool}
}

// CreateRun inserts a run row.
func (r *RunRepository) CreateRun(ctx context.Context, run domain.Run) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO pipeline_runs (id, started_at, finished_at, status, error) VALUES ($1,$2,$3,$4,$5)`,
		run.ID, run.StartedAt, run.FinishedAt, string(run.Status), run.Error)
	return err
}

// FinishRun updates the run row and stores its dataset stats in one
// transaction.
func (r *RunRepository) FinishRun(ctx context.Context, run domain.Run) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	tag, err := tx.Exec(ctx,
		`UPDATE pipeline_runs SET finished_at = $2, status = $3, error = $4 WHERE id = $1`,
		run.ID, run.FinishedAt, string(run.Status), run.Error)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrRunNotFound, run.ID)
	}

	batch := &pgx.Batch{}
	for _, ds := range run.Datasets {
		batch.Queue(`INSERT INTO pipeline_run_datasets
    (run_id, name, source, extracted_rows, retained_rows, recent_day, window_start, violations)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
ON CONFLICT (run_id, name) DO UPDATE SET
    source = EXCLUDED.source,
    extracted_rows = EXCLUDED.extracted_rows,
    retained_rows = EXCLUDED.retained_rows,
    recent_day = EXCLUDED.recent_day,
    window_start = EXCLUDED.window_start,
    violations = EXCLUDED.violations`,
			run.ID, ds.Name, ds.Source, ds.ExtractedRows, ds.RetainedRows, ds.RecentDay, ds.WindowStart, ds.Violations)
	}
	if batch.Len() == 0 {
		return nil
	}
	return tx.SendBatch(ctx, batch).Close()
}

// GetRun returns a run with its dataset stats.
func (r *RunRepository) GetRun(ctx context.Context, id string) (*domain.Run, error) {
	var run domain.Run
	var status string
	err := r.pool.QueryRow(ctx,
		`SELECT id::text, started_at, finished_at, status, error FROM pipeline_runs WHERE id = $1`, id).
		Scan(&run.ID, &run.StartedAt, &run.FinishedAt, &status, &run.Error)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrRunNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	run.Status = domain.RunStatus(status)

	if run.Datasets, err = r.datasets(ctx, run.ID); err != nil {
		return nil, err
	}
	return &run, nil
}

// ListRuns returns up to limit runs, most recent first. A limit of zero
// or less returns all runs.
func (r *RunRepository) ListRuns(ctx context.Context, limit int) ([]domain.Run, error) {
	query := `SELECT id::text, started_at, finished_at, status, error FROM pipeline_runs ORDER BY started_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	runs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Run, error) {
		var run domain.Run
		var status string
		err := row.Scan(&run.ID, &run.StartedAt, &run.FinishedAt, &status, &run.Error)
		run.Status = domain.RunStatus(status)
		return run, err
	})
	if err != nil {
		return nil, err
	}

	for i := range runs {
		if runs[i].Datasets, err = r.datasets(ctx, runs[i].ID); err != nil {
			return nil, err
		}
	}
	return runs, nil
}

func (r *RunRepository) datasets(ctx context.Context, runID string) ([]domain.DatasetStat, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT name, source, extracted_rows, retained_rows, recent_day, window_start, violations
        FROM pipeline_run_datasets
        WHERE run_id = $1
        ORDER BY name`, runID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DatasetStat, error) {
		var ds domain.DatasetStat
		var recent, start *time.Time
		err := row.Scan(&ds.Name, &ds.Source, &ds.ExtractedRows, &ds.RetainedRows, &recent, &start, &ds.Violations)
		ds.RecentDay, ds.WindowStart = recent, start
		return ds, err
	})
}
