package core

import (
	"fmt"
	"sort"
	"time"

	"github.com/farmtech/memscope/internal/contract"
	"github.com/farmtech/memscope/schema"
)

// Compare computes per-category deltas between an original and an optimized
// analysis. It fails only when one side is missing; every other input
// degrades to a zero delta. When the original footprint is zero the savings
// percentage is reported as zero rather than dividing by zero.
func Compare(original, optimized *schema.Analysis) (schema.ComparisonReport, error) {
	if original == nil || optimized == nil {
		return schema.ComparisonReport{}, fmt.Errorf("comparison not possible, both analyses are required: %w", contract.ErrInvalidInput)
	}

	report := schema.ComparisonReport{
		GeneratedAt: time.Now(),
		Original:    *original,
		Optimized:   *optimized,
		TypeDeltas:  make(map[schema.PrimitiveType]schema.TypeDelta),
	}

	// --- 1. Memory delta ---
	saved := original.EstimatedMemoryBytes - optimized.EstimatedMemoryBytes
	report.Memory = schema.MemoryDelta{
		OriginalBytes:  original.EstimatedMemoryBytes,
		OptimizedBytes: optimized.EstimatedMemoryBytes,
		SavedBytes:     saved,
	}
	if original.EstimatedMemoryBytes > 0 {
		report.Memory.SavedPercent = float64(saved) / float64(original.EstimatedMemoryBytes) * 100
	}

	// --- 2. Per-type deltas, only where the count changed ---
	for _, tag := range schema.AllPrimitiveTypes {
		origCount := original.TypeCounts[tag]
		optCount := optimized.TypeCounts[tag]
		if origCount == optCount {
			continue
		}
		report.TypeDeltas[tag] = schema.TypeDelta{
			OriginalCount:  origCount,
			OptimizedCount: optCount,
			Diff:           origCount - optCount,
		}
	}

	// --- 3. Buffer delta ---
	report.Buffers = schema.BufferDelta{
		OriginalBytes:  original.BufferTotal(),
		OptimizedBytes: optimized.BufferTotal(),
		SavedBytes:     original.BufferTotal() - optimized.BufferTotal(),
	}

	// --- 4. Recommendations ---
	report.Recommendations = buildRecommendations(original, optimized)

	return report, nil
}

// buildRecommendations runs the fixed rule list in catalog order. Each rule
// inspects one category and appends its recommendation when the precondition
// holds; the rules are independent of each other.
func buildRecommendations(original, optimized *schema.Analysis) []string {
	var recs []string

	if original.TypeCounts[schema.TypeInt] > optimized.TypeCounts[schema.TypeInt] {
		recs = append(recs, "Adopted narrower fixed-width integer types in place of 'int'")
	}
	if original.Strings.Growable > optimized.Strings.Growable {
		recs = append(recs, "Reduced heap-backed 'String' objects in favor of 'const char*'")
	}
	if optimized.Strings.FlashWrapped > 0 {
		recs = append(recs, "Wrapped constant strings in F() to keep them in flash")
	}
	if original.BufferTotal() > optimized.BufferTotal() {
		recs = append(recs, "Reduced fixed serialization buffer capacity")
	}

	// Struct names sorted so the rule output is order-stable.
	names := make([]string, 0, len(original.Structures))
	for name := range original.Structures {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		origStruct := original.Structures[name]
		optStruct, ok := optimized.Structures[name]
		if !ok {
			continue
		}
		if origStruct.SizeBytes > optStruct.SizeBytes {
			recs = append(recs, fmt.Sprintf("Slimmed struct '%s' from %d to %d bytes", name, origStruct.SizeBytes, optStruct.SizeBytes))
		}
	}

	return recs
}
