package schema

import "time"

// MemoryDelta holds the headline footprint numbers of a comparison.
type MemoryDelta struct {
	OriginalBytes  int     `json:"original_bytes"`  // Estimated footprint of the original version
	OptimizedBytes int     `json:"optimized_bytes"` // Estimated footprint of the optimized version
	SavedBytes     int     `json:"saved_bytes"`     // OriginalBytes - OptimizedBytes (negative means regression)
	SavedPercent   float64 `json:"saved_percent"`   // SavedBytes / OriginalBytes * 100; zero when OriginalBytes is zero
}

// TypeDelta holds the per-type declaration count change between two versions.
type TypeDelta struct {
	OriginalCount  int `json:"original_count"`
	OptimizedCount int `json:"optimized_count"`
	Diff           int `json:"diff"` // OriginalCount - OptimizedCount
}

// BufferDelta holds the fixed-buffer capacity change between two versions.
type BufferDelta struct {
	OriginalBytes  int `json:"original_bytes"`
	OptimizedBytes int `json:"optimized_bytes"`
	SavedBytes     int `json:"saved_bytes"`
}

// ComparisonReport is the full result of comparing an original analysis
// against an optimized one. Per-type deltas are present only for types whose
// count actually differs between the versions.
type ComparisonReport struct {
	GeneratedAt     time.Time                   `json:"generated_at"`
	Original        Analysis                    `json:"original"`
	Optimized       Analysis                    `json:"optimized"`
	Memory          MemoryDelta                 `json:"memory_delta"`
	TypeDeltas      map[PrimitiveType]TypeDelta `json:"per_type_delta"`
	Buffers         BufferDelta                 `json:"buffer_delta"`
	Recommendations []string                    `json:"recommendations"` // Rule order = catalog order
}
