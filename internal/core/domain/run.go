package domain

import "time"

// RunStatus is the lifecycle state of a pipeline run.
type RunStatus string

const (
	RunRunning   RunStatus = "running"
	RunSucceeded RunStatus = "succeeded"
	RunFailed    RunStatus = "failed"
)

// Run is the audit record of one pipeline execution.
type Run struct {
	ID         string        `json:"id"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt *time.Time    `json:"finished_at,omitempty"`
	Status     RunStatus     `json:"status"`
	Error      string        `json:"error,omitempty"`
	Datasets   []DatasetStat `json:"datasets"`
}

// DatasetStat captures what a run did to one dataset. RecentDay and
// WindowStart are nil when the dataset never reached the recency filter.
type DatasetStat struct {
	Name          string     `json:"name"`
	Source        string     `json:"source"`
	ExtractedRows int        `json:"extracted_rows"`
	RetainedRows  int        `json:"retained_rows"`
	RecentDay     *time.Time `json:"recent_day,omitempty"`
	WindowStart   *time.Time `json:"window_start,omitempty"`
	Violations    int        `json:"violations"`
}
