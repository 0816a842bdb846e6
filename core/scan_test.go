package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmtech/memscope/schema"
)

func TestScanTypeCounts(t *testing.T) {
	tests := []struct {
		name     string
		corpus   string
		expected map[schema.PrimitiveType]int
	}{
		{
			name:   "mixed declarations",
			corpus: "int a = 1;\nint b = 2;\nint c = 3;\nuint8_t d = 4;\nuint8_t e = 5;\n",
			expected: map[schema.PrimitiveType]int{
				schema.TypeInt:   3,
				schema.TypeUint8: 2,
			},
		},
		{
			name:   "fixed-width prefixes do not leak into int",
			corpus: "uint8_t a = 1;\nint8_t b = 2;\nuint16_t c;\n",
			expected: map[schema.PrimitiveType]int{
				schema.TypeUint8:  1,
				schema.TypeInt8:   1,
				schema.TypeUint16: 1,
				schema.TypeInt:    0,
			},
		},
		{
			name:   "handle covers String and const char*",
			corpus: "String name = \"a\";\nconst char* label = \"b\";\n",
			expected: map[schema.PrimitiveType]int{
				schema.TypeHandle: 2,
			},
		},
		{
			name:     "empty corpus",
			corpus:   "",
			expected: map[schema.PrimitiveType]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := Scan(tt.corpus)

			// Counts are total over the catalog even for an empty corpus
			require.Len(t, matches.TypeCounts, len(schema.AllPrimitiveTypes))
			for tag, want := range tt.expected {
				assert.Equal(t, want, matches.TypeCounts[tag], "count for %s", tag)
			}
		})
	}
}

func TestScanIsDeterministic(t *testing.T) {
	corpus := "uint8_t a = 1;\nString s = \"x\";\nStaticJsonDocument<200> doc;\n// memory saving\n"

	first := Scan(corpus)
	second := Scan(corpus)
	assert.Equal(t, first, second)
}

func TestScanStructBlocks(t *testing.T) {
	corpus := `
struct SensorReading {
    float temperature;
    uint8_t humidity;
};
struct Empty { int x; };
`
	matches := Scan(corpus)
	require.Len(t, matches.StructBlocks, 2)
	assert.Equal(t, "SensorReading", matches.StructBlocks[0].Name)
	assert.Contains(t, matches.StructBlocks[0].Body, "float temperature;")
	assert.Equal(t, "Empty", matches.StructBlocks[1].Name)
}

func TestScanNestedStructIsNotRecursive(t *testing.T) {
	// The block matcher is non-recursive: an inner block's closing brace
	// terminates the outer match, and the inner struct is never matched on
	// its own.
	corpus := `
struct Outer {
    uint8_t a;
    struct Inner {
        int b;
    };
    float c;
};
`
	matches := Scan(corpus)
	require.Len(t, matches.StructBlocks, 1)
	assert.Equal(t, "Outer", matches.StructBlocks[0].Name)

	s := DecomposeStruct(matches.StructBlocks[0].Name, matches.StructBlocks[0].Body)
	assert.Equal(t, []schema.Field{
		{Type: "uint8_t", Name: "a"},
		{Type: "int", Name: "b"},
	}, s.Fields)
	assert.Equal(t, 5, s.SizeBytes)
}

func TestScanStringIdiomsSkipCommentLines(t *testing.T) {
	corpus := `String active = "counted";
// String commented = "not counted";
const char* label = "counted";
// const char* old = "not counted";
Serial.println(F("kept in flash"));
`
	matches := Scan(corpus)
	assert.Equal(t, 1, matches.Strings.Growable)
	assert.Equal(t, 1, matches.Strings.PointerStrings)
	assert.Equal(t, 1, matches.Strings.FlashWrapped)
}

func TestScanStringConcatenations(t *testing.T) {
	corpus := "payload = String + String;\nString note = \"n\";\n"
	matches := Scan(corpus)
	assert.Equal(t, 1, matches.Strings.Concatenations)
	assert.Equal(t, 1, matches.Strings.Growable)
}

func TestScanBuffers(t *testing.T) {
	t.Run("buffers kept in match order", func(t *testing.T) {
		corpus := "StaticJsonDocument<512> a;\nStaticJsonDocument<200> b;\n"
		matches := Scan(corpus)
		require.Len(t, matches.Buffers, 2)
		assert.Equal(t, 512, matches.Buffers[0].CapacityBytes)
		assert.Equal(t, 200, matches.Buffers[1].CapacityBytes)
	})

	t.Run("overflowing capacity literal is skipped", func(t *testing.T) {
		corpus := "StaticJsonDocument<99999999999999999999> a;\nStaticJsonDocument<256> b;\n"
		matches := Scan(corpus)
		require.Len(t, matches.Buffers, 1)
		assert.Equal(t, 256, matches.Buffers[0].CapacityBytes)
	})
}

func TestCountOptimizationComments(t *testing.T) {
	tests := []struct {
		name     string
		corpus   string
		expected int
	}{
		{
			name:     "no comments",
			corpus:   "uint8_t a = 1;\n",
			expected: 0,
		},
		{
			name:     "keyword in code does not count",
			corpus:   "int memoryUsage = 0;\n",
			expected: 0,
		},
		{
			name:     "one keyword line",
			corpus:   "// optimized for low memory\n",
			expected: 1,
		},
		{
			name:     "two keywords on one line count once",
			corpus:   "// memory saving via uint8_t\n",
			expected: 1,
		},
		{
			name:     "trailing comment counts",
			corpus:   "uint8_t a = 1; // narrower uint8_t saves RAM\n",
			expected: 1,
		},
		{
			name:     "unrelated comment does not count",
			corpus:   "// setup the pins\n",
			expected: 0,
		},
		{
			name:     "case insensitive",
			corpus:   "// OPTIMIZED\n// Memory layout\n",
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, countOptimizationComments(tt.corpus))
		})
	}
}

func TestStripCommentLines(t *testing.T) {
	corpus := "int a = 1;\n// removed\n  // also removed\nint b = 2;"
	stripped := stripCommentLines(corpus)
	assert.Equal(t, "int a = 1;\nint b = 2;", stripped)
}
