package configs

import (
	"path/filepath"
	"sort"
)

// Pipeline configures the extract and transform stages. Datasets maps a
// dataset name to its source file; relative sources are resolved against
// DataDir.
type Pipeline struct {
	DataDir  string            `env:"DATA_DIR" envDefault:"./data" validate:"required"`
	Datasets map[string]string `env:"DATASETS" envDefault:"campaign_budget:campaign_budget.csv,campaign_result:campaign_result.csv,product_checkout:product_checkout.csv" validate:"required,min=1,dive,keys,required,endkeys,required"`

	DateColumn string `env:"DATE_COLUMN" envDefault:"date" validate:"required"`
	// DateLayout is a Go reference-time layout.
	DateLayout string `env:"DATE_LAYOUT" envDefault:"2006-01-02" validate:"required"`
	WindowDays int    `env:"WINDOW_DAYS" envDefault:"61" validate:"gt=0"`

	// Validate enables the schema validation stage. Violations are
	// reported, never enforced.
	Validate bool `env:"VALIDATE" envDefault:"false"`

	// ReportDataset is the dataset whose row count is printed after a run.
	ReportDataset string `env:"REPORT_DATASET" envDefault:"campaign_budget" validate:"required"`

	// SeedSample writes generated sample files into DataDir before the run.
	SeedSample bool `env:"SEED_SAMPLE" envDefault:"false"`
}

// Names returns the configured dataset names in sorted order.
func (c Pipeline) Names() []string {
	names := make([]string, 0, len(c.Datasets))
	for name := range c.Datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Source returns the resolved path of a dataset and whether it exists in
// the configuration.
func (c Pipeline) Source(name string) (string, bool) {
	src, ok := c.Datasets[name]
	if !ok {
		return "", false
	}
	if filepath.IsAbs(src) {
		return src, true
	}
	return filepath.Join(c.DataDir, src), true
}
