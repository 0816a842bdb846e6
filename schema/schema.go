// Package schema has the data model, constants and report records for all parts of memscope.
package schema

// Field is a single typed member of a Structure.
// Type keeps the raw surface spelling so unrecognized types survive the round trip.
type Field struct {
	Type string `json:"type"` // Surface type spelling, e.g. "uint8_t" or "unsigned long"
	Name string `json:"name"` // Field identifier
}

// Structure is a named aggregate of typed fields, decomposed from one
// composite-type block. SizeBytes is the plain sum of the field sizes:
// no padding or alignment is modeled.
type Structure struct {
	Name      string  `json:"name"`       // Struct identifier
	Fields    []Field `json:"fields"`     // Fields in declaration order
	SizeBytes int     `json:"size_bytes"` // Additive size under the sizing model
}

// StringUsage counts the string-handling idioms found in one corpus.
type StringUsage struct {
	FlashWrapped   int `json:"flash_wrapped"`   // F("...") constants, zero resident bytes
	Growable       int `json:"growable"`        // String declarations, ~20 bytes each on average
	PointerStrings int `json:"pointer_strings"` // const char* declarations, 4 bytes each
	Concatenations int `json:"concatenations"`  // String + String expressions, a heap churn signal
}

// BufferDeclaration is a fixed-capacity serialization buffer, e.g. StaticJsonDocument<200>.
type BufferDeclaration struct {
	CapacityBytes int `json:"capacity_bytes"` // Declared capacity in bytes
}

// Analysis is the per-file analysis record. It is constructed once per scan
// and never mutated afterwards.
type Analysis struct {
	SourcePath           string                `json:"source_path"`            // Path of the analyzed corpus
	CorpusByteLength     int                   `json:"corpus_byte_length"`     // Total bytes of source text
	LineCount            int                   `json:"line_count"`             // Total physical lines
	TypeCounts           map[PrimitiveType]int `json:"type_counts"`            // Declarations found per primitive type
	Structures           map[string]Structure  `json:"structures"`             // Decomposed composite-type blocks by name
	Strings              StringUsage           `json:"string_usage"`           // String idiom counts
	Buffers              []BufferDeclaration   `json:"buffers"`                // Fixed-capacity buffers in match order
	EstimatedMemoryBytes int                   `json:"estimated_memory_bytes"` // Total estimated resident footprint
}

// BufferTotal returns the summed declared capacity of all buffers.
func (a *Analysis) BufferTotal() int {
	var total int
	for _, b := range a.Buffers {
		total += b.CapacityBytes
	}
	return total
}

// SmallestBuffer returns the smallest declared buffer capacity and true,
// or zero and false when no buffers were declared.
func (a *Analysis) SmallestBuffer() (int, bool) {
	if len(a.Buffers) == 0 {
		return 0, false
	}
	smallest := a.Buffers[0].CapacityBytes
	for _, b := range a.Buffers[1:] {
		if b.CapacityBytes < smallest {
			smallest = b.CapacityBytes
		}
	}
	return smallest, true
}

// RawMatches is the tagged result of one scanner pass over a corpus.
// Only counts and captured groups are retained, never match positions.
type RawMatches struct {
	TypeCounts           map[PrimitiveType]int // Declarations per primitive type
	StructBlocks         []StructBlock         // Composite-type blocks in first-to-last order
	Strings              StringUsage           // String idiom counts from non-comment lines
	Buffers              []BufferDeclaration   // Fixed-capacity buffers in match order
	OptimizationComments int                   // Comment lines matching the optimization keyword list
}

// StructBlock is one matched composite-type block before decomposition.
type StructBlock struct {
	Name string // Struct identifier
	Body string // Raw text between the block delimiters
}
