package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmtech/memscope/schema"
)

func TestRunStore_NoneBackend(t *testing.T) {
	store, err := NewRunStore(schema.NoneBackend, "")
	require.NoError(t, err)
	require.NotNil(t, store)

	// BeginRun should return 0 for NoneBackend
	runID, err := store.BeginRun(time.Now(), map[string]any{"test": "value"})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), runID)

	// Other operations should not error
	assert.NoError(t, store.EndRun(1, time.Now()))
	assert.NoError(t, store.RecordScore(1, schema.ScoreReport{}))
	assert.NoError(t, store.RecordComparison(1, schema.ComparisonReport{}))

	runs, err := store.ListRuns()
	assert.NoError(t, err)
	assert.Nil(t, runs)

	status, err := store.GetStatus()
	assert.NoError(t, err)
	assert.Equal(t, schema.NoneBackend, status.Backend)

	assert.NoError(t, store.Close())
}

func TestRunStore_UnsupportedBackend(t *testing.T) {
	_, err := NewRunStore(schema.DatabaseBackend("oracle"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported backend")
}

func TestRunStore_SQLite(t *testing.T) {
	// Use in-memory SQLite for testing
	store, err := NewRunStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	// Test BeginRun
	startTime := time.Now()
	configParams := map[string]any{
		"kind":   "score",
		"source": "firmware.ino",
	}
	runID, err := store.BeginRun(startTime, configParams)
	require.NoError(t, err)
	assert.Greater(t, runID, int64(0))

	// Test RecordScore
	report := schema.ScoreReport{
		Analysis: schema.Analysis{
			SourcePath:           "firmware.ino",
			EstimatedMemoryBytes: 314,
		},
		Score: 78.5,
	}
	require.NoError(t, store.RecordScore(runID, report))

	// Test EndRun
	require.NoError(t, store.EndRun(runID, startTime.Add(time.Second)))

	// Test ListRuns
	runs, err := store.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, runID, runs[0].RunID)
	assert.Equal(t, schema.ScoreKind, runs[0].Kind)
	assert.Equal(t, "firmware.ino", runs[0].SourcePath)
	assert.InDelta(t, 78.5, runs[0].Score, 0.001)
	assert.Equal(t, int64(314), runs[0].EstimatedBytes)
	require.NotNil(t, runs[0].FinishedAt)

	// Test GetStatus
	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, schema.SQLiteBackend, status.Backend)
	assert.Equal(t, 1, status.TotalRuns)
	require.NotNil(t, status.LastRun)
}

func TestRunStore_SQLiteComparison(t *testing.T) {
	store, err := NewRunStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	runID, err := store.BeginRun(time.Now(), nil)
	require.NoError(t, err)

	report := schema.ComparisonReport{
		Optimized: schema.Analysis{SourcePath: "firmware_optimized.ino"},
		Memory: schema.MemoryDelta{
			OriginalBytes:  1000,
			OptimizedBytes: 700,
			SavedBytes:     300,
			SavedPercent:   30.0,
		},
	}
	require.NoError(t, store.RecordComparison(runID, report))

	runs, err := store.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, schema.ComparisonKind, runs[0].Kind)
	assert.Equal(t, int64(300), runs[0].SavedBytes)
	assert.InDelta(t, 30.0, runs[0].SavedPercent, 0.001)
	assert.Nil(t, runs[0].FinishedAt)
}

func TestClearHistory(t *testing.T) {
	t.Run("sqlite requires db file path", func(t *testing.T) {
		err := ClearHistory(schema.SQLiteBackend, "", "")
		require.Error(t, err)
	})

	t.Run("sqlite removes db file", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "history.db")
		store, err := NewRunStore(schema.SQLiteBackend, dbPath)
		require.NoError(t, err)
		require.NoError(t, store.Close())

		require.NoError(t, ClearHistory(schema.SQLiteBackend, dbPath, ""))
		// Clearing a missing file is not an error
		require.NoError(t, ClearHistory(schema.SQLiteBackend, dbPath, ""))
	})

	t.Run("none backend is a no-op", func(t *testing.T) {
		require.NoError(t, ClearHistory(schema.NoneBackend, "", ""))
	})

	t.Run("unsupported backend errors", func(t *testing.T) {
		require.Error(t, ClearHistory(schema.DatabaseBackend("oracle"), "", ""))
	})
}

func TestMigrateHistory_NoneBackend(t *testing.T) {
	err := MigrateHistory(schema.NoneBackend, "", -1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migrations are not supported for NoneBackend")
}

func TestMigrateHistory_SQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate.db")

	// Migrate up to latest, then all the way back down
	require.NoError(t, MigrateHistory(schema.SQLiteBackend, dbPath, -1))
	require.NoError(t, MigrateHistory(schema.SQLiteBackend, dbPath, 0))
}
