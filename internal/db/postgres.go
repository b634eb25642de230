package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"ads-etl/internal/config/configs"
)

// NewPostgresPool opens the run log pool. The batch job writes a handful
// of rows per run, so the pool is kept small. Connectivity is verified
// with a ping bounded by a 5 second timeout; on failure the pool is
// closed and the error returned. The caller must close the returned pool.
func NewPostgresPool(ctx context.Context, cfg configs.Postgres) (*pgxpool.Pool, error) {
	poolConf, err := pgxpool.ParseConfig(cfg.Addr.String())
	if err != nil {
		return nil, err
	}
	poolConf.MaxConns = 2
	poolConf.ConnConfig.RuntimeParams["application_name"] = "ads-etl"

	pool, err := pgxpool.NewWithConfig(ctx, poolConf)
	if err != nil {
		return nil, err
	}

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
