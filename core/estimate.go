package core

import (
	"strings"

	"github.com/farmtech/memscope/schema"
)

// BuildAnalysis runs the full pipeline over one corpus: scan, decompose each
// composite-type block, and aggregate the estimated resident footprint. It is
// a total function: malformed constructs degrade to "not counted" or
// "default-sized", never to an error, so diagnostic output is always
// available even for incomplete firmware source.
func BuildAnalysis(sourcePath, corpus string) schema.Analysis {
	matches := Scan(corpus)

	structures := make(map[string]schema.Structure, len(matches.StructBlocks))
	for _, blk := range matches.StructBlocks {
		structures[blk.Name] = DecomposeStruct(blk.Name, blk.Body)
	}

	analysis := schema.Analysis{
		SourcePath:       sourcePath,
		CorpusByteLength: len(corpus),
		LineCount:        len(strings.Split(corpus, "\n")),
		TypeCounts:       matches.TypeCounts,
		Structures:       structures,
		Strings:          matches.Strings,
		Buffers:          matches.Buffers,
	}
	analysis.EstimatedMemoryBytes = estimateMemory(&analysis)

	return analysis
}

// estimateMemory computes the closed-form footprint sum:
// declarations by type size, plus structure sizes, plus string costs,
// plus declared buffer capacities.
func estimateMemory(a *schema.Analysis) int {
	var total int

	for tag, count := range a.TypeCounts {
		total += count * schema.SizeOf(tag)
	}
	for _, s := range a.Structures {
		total += s.SizeBytes
	}
	// Flash-wrapped constants cost zero resident bytes.
	total += a.Strings.Growable * schema.GrowableStringEstimate
	total += a.Strings.PointerStrings * schema.PointerStringSize
	total += a.BufferTotal()

	return total
}
