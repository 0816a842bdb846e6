package history

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/farmtech/memscope/internal/contract"
	"github.com/farmtech/memscope/schema"
)

// MockHistoryManager is a mock implementation of HistoryManager for testing.
type MockHistoryManager struct {
	mock.Mock
}

var _ contract.HistoryManager = &MockHistoryManager{} // Compile-time check

// GetRunStore implements the HistoryManager interface.
func (m *MockHistoryManager) GetRunStore() contract.RunStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.RunStore)
	return store
}

// MockRunStore is a mock implementation of RunStore for testing.
type MockRunStore struct {
	mock.Mock
}

var _ contract.RunStore = &MockRunStore{} // Compile-time check

// BeginRun implements the RunStore interface.
func (m *MockRunStore) BeginRun(startTime time.Time, configParams map[string]any) (int64, error) {
	args := m.Called(startTime, configParams)
	return args.Get(0).(int64), args.Error(1)
}

// EndRun implements the RunStore interface.
func (m *MockRunStore) EndRun(runID int64, endTime time.Time) error {
	args := m.Called(runID, endTime)
	return args.Error(0)
}

// RecordScore implements the RunStore interface.
func (m *MockRunStore) RecordScore(runID int64, report schema.ScoreReport) error {
	args := m.Called(runID, report)
	return args.Error(0)
}

// RecordComparison implements the RunStore interface.
func (m *MockRunStore) RecordComparison(runID int64, report schema.ComparisonReport) error {
	args := m.Called(runID, report)
	return args.Error(0)
}

// ListRuns implements the RunStore interface.
func (m *MockRunStore) ListRuns() ([]schema.RunRecord, error) {
	args := m.Called()
	runs, _ := args.Get(0).([]schema.RunRecord)
	return runs, args.Error(1)
}

// GetStatus implements the RunStore interface.
func (m *MockRunStore) GetStatus() (schema.HistoryStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.HistoryStatus), args.Error(1)
}

// Close implements the RunStore interface.
func (m *MockRunStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
