// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/farmtech/memscope/schema"
)

// HistoryManager defines the interface for reaching the run-tracking store.
// This allows the history layer to be mocked for testing.
type HistoryManager interface {
	GetRunStore() RunStore
}

// RunStore defines the interface for tracking analyzer runs and their
// headline results. Tracking is advisory: a store failure must never abort
// an analysis.
type RunStore interface {
	// BeginRun creates a new run and returns its unique ID.
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the run with completion data.
	EndRun(runID int64, endTime time.Time) error

	// RecordScore stores the headline numbers of a score report.
	RecordScore(runID int64, report schema.ScoreReport) error

	// RecordComparison stores the headline numbers of a comparison report.
	RecordComparison(runID int64, report schema.ComparisonReport) error

	// ListRuns returns all tracked runs, oldest first.
	ListRuns() ([]schema.RunRecord, error)

	// GetStatus returns status information about the store.
	GetStatus() (schema.HistoryStatus, error)

	// Close closes the underlying connection.
	Close() error
}
