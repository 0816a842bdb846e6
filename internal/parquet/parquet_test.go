package parquet

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmtech/memscope/schema"
)

func sampleRunRecords() []schema.RunRecord {
	finished := time.Now().Add(time.Second)
	return []schema.RunRecord{
		{
			RunID:          1,
			StartedAt:      time.Now(),
			FinishedAt:     &finished,
			Kind:           schema.ScoreKind,
			SourcePath:     "firmware.ino",
			Score:          78.5,
			EstimatedBytes: 314,
		},
		{
			RunID:          2,
			StartedAt:      time.Now(),
			Kind:           schema.ComparisonKind,
			SourcePath:     "firmware_optimized.ino",
			EstimatedBytes: 700,
			SavedBytes:     300,
			SavedPercent:   30.0,
		},
	}
}

func TestRunStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	runSchema := parquet.SchemaOf(new(Run))
	require.NotNil(t, runSchema)

	// Check that all expected columns exist
	expectedColumns := []string{
		"run_id",
		"started_at",
		"finished_at",
		"kind",
		"source_path",
		"score",
		"estimated_bytes",
		"saved_bytes",
		"saved_percent",
	}

	for _, colName := range expectedColumns {
		col, ok := runSchema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestConvertRunRecords(t *testing.T) {
	runs := ConvertRunRecords(sampleRunRecords())
	require.Len(t, runs, 2)

	assert.Equal(t, int64(1), runs[0].RunID)
	assert.Equal(t, "score", runs[0].Kind)
	assert.NotNil(t, runs[0].FinishedAt)

	assert.Equal(t, "comparison", runs[1].Kind)
	assert.Nil(t, runs[1].FinishedAt)
	assert.Equal(t, int64(300), runs[1].SavedBytes)
}

func TestWriteRunsParquet(t *testing.T) {
	// Create temporary directory for test output
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "runs.parquet")

	data := ConvertRunRecords(sampleRunRecords())

	// Write data to Parquet file
	err := WriteRunsParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	// Verify file was created and is non-empty
	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteRunsParquetBadPath(t *testing.T) {
	err := WriteRunsParquet(nil, filepath.Join(t.TempDir(), "missing", "runs.parquet"))
	require.Error(t, err)
}
