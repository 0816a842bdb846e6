package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmtech/memscope/schema"
)

func TestBuildAnalysisDeclarationsOnly(t *testing.T) {
	corpus := "int a = 1;\nint b = 2;\nint c = 3;\nuint8_t d = 4;\nuint8_t e = 5;\n"

	analysis := BuildAnalysis("sketch.ino", corpus)

	assert.Equal(t, "sketch.ino", analysis.SourcePath)
	assert.Equal(t, len(corpus), analysis.CorpusByteLength)
	assert.Equal(t, len(strings.Split(corpus, "\n")), analysis.LineCount)
	assert.Equal(t, 3, analysis.TypeCounts[schema.TypeInt])
	assert.Equal(t, 2, analysis.TypeCounts[schema.TypeUint8])
	// 3*4 + 2*1
	assert.Equal(t, 14, analysis.EstimatedMemoryBytes)
}

func TestBuildAnalysisFullCorpus(t *testing.T) {
	corpus := `uint8_t counter = 0;
int wide = 0;
struct Reading {
    float temperature;
    uint8_t humidity;
};
String name = "node";
const char* label = "ok";
Serial.println(F("boot"));
StaticJsonDocument<200> doc;
`

	analysis := BuildAnalysis("node.ino", corpus)

	// Struct field lines also match the declaration patterns, so the counts
	// include them alongside the top-level declarations.
	assert.Equal(t, 2, analysis.TypeCounts[schema.TypeUint8])
	assert.Equal(t, 1, analysis.TypeCounts[schema.TypeInt])
	assert.Equal(t, 1, analysis.TypeCounts[schema.TypeFloat])
	assert.Equal(t, 2, analysis.TypeCounts[schema.TypeHandle])

	require.Contains(t, analysis.Structures, "Reading")
	assert.Equal(t, 5, analysis.Structures["Reading"].SizeBytes)

	assert.Equal(t, 1, analysis.Strings.Growable)
	assert.Equal(t, 1, analysis.Strings.PointerStrings)
	assert.Equal(t, 1, analysis.Strings.FlashWrapped)

	require.Len(t, analysis.Buffers, 1)
	assert.Equal(t, 200, analysis.BufferTotal())

	// Declarations 2*1 + 1*4 + 1*4 + 2*4 = 18, struct 5, growable 20,
	// pointer 4, flash 0, buffer 200.
	assert.Equal(t, 247, analysis.EstimatedMemoryBytes)
}

func TestBuildAnalysisEmptyCorpus(t *testing.T) {
	analysis := BuildAnalysis("empty.ino", "")

	assert.Equal(t, 0, analysis.CorpusByteLength)
	assert.Equal(t, 1, analysis.LineCount)
	assert.Empty(t, analysis.Structures)
	assert.Empty(t, analysis.Buffers)
	assert.Equal(t, 0, analysis.EstimatedMemoryBytes)
}

func TestBuildAnalysisFlashStringsAreFree(t *testing.T) {
	withFlash := BuildAnalysis("a.ino", "Serial.println(F(\"hello\"));\n")
	without := BuildAnalysis("b.ino", "Serial.println(\"hello\");\n")

	assert.Equal(t, 1, withFlash.Strings.FlashWrapped)
	assert.Equal(t, without.EstimatedMemoryBytes, withFlash.EstimatedMemoryBytes)
}
