package schema

import "time"

// RunRecord is one tracked analyzer run in the history store.
type RunRecord struct {
	RunID          int64      `json:"run_id"`
	StartedAt      time.Time  `json:"started_at"`
	FinishedAt     *time.Time `json:"finished_at,omitempty"`
	Kind           ReportKind `json:"kind"`
	SourcePath     string     `json:"source_path"`
	Score          float64    `json:"score"`           // score runs only
	EstimatedBytes int64      `json:"estimated_bytes"` // footprint of the (optimized) analysis
	SavedBytes     int64      `json:"saved_bytes"`     // comparison runs only
	SavedPercent   float64    `json:"saved_percent"`   // comparison runs only
}

// HistoryStatus summarizes the state of the history store.
type HistoryStatus struct {
	Backend   DatabaseBackend `json:"backend"`
	Location  string          `json:"location"`
	TotalRuns int             `json:"total_runs"`
	LastRun   *time.Time      `json:"last_run,omitempty"`
}
