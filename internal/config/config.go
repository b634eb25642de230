package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"ads-etl/internal/config/configs"
)

// Config holds the pipeline's datasets and transforms, the run log
// database, the report API and the logger, each read from its own
// environment prefix.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is only
	// attached to log records.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the report API. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the run log database. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Pipeline configures datasets and transforms. Environment variables
	// prefixed with PIPELINE_ will populate this struct.
	Pipeline configs.Pipeline `envPrefix:"PIPELINE_"`
}

// Load reads configuration from environment variables into a Config and
// validates it. All fields are loaded with their specified defaults when
// no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks struct constraints and cross-field rules.
func Validate(cfg Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, ok := cfg.Pipeline.Datasets[cfg.Pipeline.ReportDataset]; !ok {
		return fmt.Errorf("invalid config: report dataset %q is not configured", cfg.Pipeline.ReportDataset)
	}
	return nil
}
