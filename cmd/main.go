package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ads-etl/internal/adapter/extract"
	"ads-etl/internal/adapter/http"
	"ads-etl/internal/adapter/memory"
	"ads-etl/internal/adapter/postgres"
	"ads-etl/internal/adapter/usecase"
	"ads-etl/internal/config"
	"ads-etl/internal/core/port"
	"ads-etl/internal/db"
	"ads-etl/internal/sample"
)

// main is the entry point of the pipeline. It loads configuration, wires
// the run log, runs extract and transform once over every configured
// dataset and prints the row count of the report dataset to stdout. When
// the report API is enabled it then serves the results until it receives
// a termination signal.
func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("failed to load config", slog.Any("error", err))
		return 1
	}

	// Stdout carries the report, logs go to stderr.
	logger := cfg.Log.New(os.Stderr).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.Pipeline.SeedSample {
		paths, err := sample.Seed(cfg.Pipeline.DataDir, sample.DefaultOptions())
		if err != nil {
			logger.Error("failed to seed sample data", slog.Any("error", err))
			return 1
		}
		logger.Info("sample data written", slog.String("dir", cfg.Pipeline.DataDir), slog.Int("files", len(paths)))
	}

	var runs port.RunRepository = memory.NewRunRepository()
	if cfg.Psql.Enabled {
		if cfg.Psql.RunMigrations {
			applied, err := db.Migrate(cfg.Psql.Addr.String())
			if err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return 1
			}
			logger.Info("migrations checked", slog.Bool("applied", applied))
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return 1
		}
		defer pool.Close()
		runs = postgres.NewRunRepository(pool)
	}

	svc := usecase.NewPipelineUseCase(cfg.Pipeline, extract.NewExtractor(), runs, logger)
	if _, err = svc.Run(ctx); err != nil {
		logger.Error("pipeline failed", slog.Any("error", err))
		return 1
	}

	count, err := svc.RowCount(cfg.Pipeline.ReportDataset)
	if err != nil {
		logger.Error("report failed", slog.Any("error", err))
		return 1
	}
	fmt.Println(count)

	if !cfg.HTTP.Enabled {
		return 0
	}
	return serve(ctx, cfg, svc, logger)
}

// serve runs the report API until ctx is cancelled and then shuts the
// server down gracefully.
func serve(ctx context.Context, cfg config.Config, svc port.PipelineUseCase, logger *slog.Logger) int {
	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.Any("error", err))
			return 1
		}
		return 0
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return 1
	}
	logger.Info("server gracefully stopped")
	return 0
}
