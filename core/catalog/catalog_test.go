package catalog

import (
	"testing"

	"github.com/farmtech/memscope/schema"
	"github.com/stretchr/testify/assert"
)

// TestDeclarationPatterns ensures each declaration pattern matches its own
// surface syntax and nothing adjacent.
func TestDeclarationPatterns(t *testing.T) {
	tests := []struct {
		name    string
		tag     schema.PrimitiveType
		corpus  string
		matches int
	}{
		{"int assignment", schema.TypeInt, "int counter = 0;", 1},
		{"int bare terminator", schema.TypeInt, "int counter;", 1},
		{"int does not match uint8_t", schema.TypeInt, "uint8_t flags = 0;", 0},
		{"int does not match int8_t", schema.TypeInt, "int8_t delta;", 0},
		{"uint8_t", schema.TypeUint8, "uint8_t a; uint8_t b = 2;", 2},
		{"uint16_t", schema.TypeUint16, "uint16_t port = 80;", 1},
		{"float", schema.TypeFloat, "float temp = 21.5;", 1},
		{"bool", schema.TypeBool, "bool armed;", 1},
		{"function call is not a declaration", schema.TypeInt, "foo(int)", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := 0
			for _, d := range Declarations {
				if d.Tag != tt.tag {
					continue
				}
				total += len(d.Pattern.FindAllString(tt.corpus, -1))
			}
			assert.Equal(t, tt.matches, total)
		})
	}
}

// TestHandlePatterns checks that both string spellings map to the handle tag.
func TestHandlePatterns(t *testing.T) {
	corpus := `String name = "probe"; const char* label = "ok";`
	total := 0
	for _, d := range Declarations {
		if d.Tag == schema.TypeHandle {
			total += len(d.Pattern.FindAllString(corpus, -1))
		}
	}
	assert.Equal(t, 2, total)
}

// TestStructBlockNonRecursive pins the documented non-recursive behavior: a
// nested block's closing brace terminates the outer match.
func TestStructBlockNonRecursive(t *testing.T) {
	corpus := `struct Outer { struct Inner { uint8_t a; } float x; };`
	m := StructBlock.FindAllStringSubmatch(corpus, -1)
	assert.Len(t, m, 1)
	assert.Equal(t, "Outer", m[0][1])
	// Body stops at the first closing brace, the inner one.
	assert.Contains(t, m[0][2], "uint8_t a;")
	assert.NotContains(t, m[0][2], "float x;")
}

// TestStringIdioms covers the flash, growable, pointer and concat patterns.
func TestStringIdioms(t *testing.T) {
	corpus := `
Serial.println(F("boot ok"));
String topic = "farm/";
const char* host = "broker.local";
String full = String + String;
`
	assert.Len(t, FlashString.FindAllString(corpus, -1), 1)
	assert.Len(t, GrowableString.FindAllString(corpus, -1), 2)
	assert.Len(t, PointerString.FindAllString(corpus, -1), 1)
	assert.Len(t, StringConcat.FindAllString(corpus, -1), 1)
}

// TestStringConcatLimitation pins that constructor-call concatenation is
// outside the pattern: only a bare String token next to the plus matches.
func TestStringConcatLimitation(t *testing.T) {
	assert.Empty(t, StringConcat.FindAllString(`String full = String(a) + String(b);`, -1))
	assert.Len(t, StringConcat.FindAllString(`payload = String+String;`, -1), 1)
}

// TestJSONBufferCapture extracts declared capacities.
func TestJSONBufferCapture(t *testing.T) {
	corpus := "StaticJsonDocument<200> doc; StaticJsonDocument<1024> big;"
	m := JSONBuffer.FindAllStringSubmatch(corpus, -1)
	assert.Len(t, m, 2)
	assert.Equal(t, "200", m[0][1])
	assert.Equal(t, "1024", m[1][1])
}

// TestFieldSize covers recognized spellings and the default fallback.
func TestFieldSize(t *testing.T) {
	assert.Equal(t, 1, FieldSize("uint8_t"))
	assert.Equal(t, 2, FieldSize("uint16_t"))
	assert.Equal(t, 4, FieldSize("float"))
	assert.Equal(t, 1, FieldSize("bool"))
	assert.Equal(t, 4, FieldSize("String"))
	assert.Equal(t, schema.DefaultFieldSize, FieldSize("unsigned long"))
}

// TestIsNarrowField pins the narrow spelling set.
func TestIsNarrowField(t *testing.T) {
	assert.True(t, IsNarrowField("uint8_t"))
	assert.True(t, IsNarrowField("int16_t"))
	assert.False(t, IsNarrowField("uint32_t"))
	assert.False(t, IsNarrowField("float"))
}
