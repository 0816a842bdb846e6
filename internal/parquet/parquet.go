// Package parquet provides data structures and functions for exporting run
// history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/farmtech/memscope/schema"
)

// Run represents a single tracked analyzer run.
// This struct maps to the memscope_runs database table.
type Run struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// StartedAt is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartedAt time.Time `parquet:"started_at,snappy"`

	// FinishedAt is when the run completed (nullable)
	FinishedAt *time.Time `parquet:"finished_at,optional,snappy"`

	// Kind is the report kind, "score" or "comparison"
	Kind string `parquet:"kind,snappy"`

	// SourcePath is the analyzed source file
	SourcePath string `parquet:"source_path,snappy"`

	// Score is the rubric total for score runs
	Score float64 `parquet:"score,snappy"`

	// EstimatedBytes is the estimated resident footprint
	EstimatedBytes int64 `parquet:"estimated_bytes,snappy"`

	// SavedBytes is the footprint reduction for comparison runs
	SavedBytes int64 `parquet:"saved_bytes,snappy"`

	// SavedPercent is the relative footprint reduction for comparison runs
	SavedPercent float64 `parquet:"saved_percent,snappy"`
}

// ConvertRunRecords converts store records to their Parquet representation.
func ConvertRunRecords(records []schema.RunRecord) []Run {
	runs := make([]Run, len(records))
	for i, r := range records {
		runs[i] = Run{
			RunID:          r.RunID,
			StartedAt:      r.StartedAt,
			FinishedAt:     r.FinishedAt,
			Kind:           string(r.Kind),
			SourcePath:     r.SourcePath,
			Score:          r.Score,
			EstimatedBytes: r.EstimatedBytes,
			SavedBytes:     r.SavedBytes,
			SavedPercent:   r.SavedPercent,
		}
	}
	return runs
}

// WriteRunsParquet writes a slice of Run structs to a Parquet file.
func WriteRunsParquet(data []Run, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the Run struct tags
	writer := parquet.NewGenericWriter[Run](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
