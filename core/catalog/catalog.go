// Package catalog declares the fixed set of lexical patterns the scanner
// recognizes in embedded firmware source, plus the scoring-only pattern sets.
// The catalog is static configuration: any construct outside it is invisible
// to the rest of the pipeline. That bound on recall is a declared limitation
// of the heuristic matcher, not a defect.
package catalog

import (
	"regexp"

	"github.com/farmtech/memscope/schema"
)

// Declaration binds one primitive type tag to the surface syntax of a
// variable declaration: `<type> <identifier>` followed by an assignment or
// statement terminator. TypeHandle appears twice because two distinct surface
// spellings (String and const char*) share the pointer-sized tag.
type Declaration struct {
	Tag     schema.PrimitiveType
	Pattern *regexp.Regexp
}

// Declarations lists every declaration pattern in catalog order.
var Declarations = []Declaration{
	{schema.TypeUint8, regexp.MustCompile(`\buint8_t\s+\w+\s*[=;]`)},
	{schema.TypeUint16, regexp.MustCompile(`\buint16_t\s+\w+\s*[=;]`)},
	{schema.TypeUint32, regexp.MustCompile(`\buint32_t\s+\w+\s*[=;]`)},
	{schema.TypeInt8, regexp.MustCompile(`\bint8_t\s+\w+\s*[=;]`)},
	{schema.TypeInt16, regexp.MustCompile(`\bint16_t\s+\w+\s*[=;]`)},
	{schema.TypeInt, regexp.MustCompile(`\bint\s+\w+\s*[=;]`)},
	{schema.TypeFloat, regexp.MustCompile(`\bfloat\s+\w+\s*[=;]`)},
	{schema.TypeBool, regexp.MustCompile(`\bbool\s+\w+\s*[=;]`)},
	{schema.TypeHandle, regexp.MustCompile(`\bString\s+\w+\s*[=;]`)},
	{schema.TypeHandle, regexp.MustCompile(`\bconst char\*\s+\w+\s*[=;]`)},
}

// Composite-type and string idiom patterns.
var (
	// StructBlock matches `struct <identifier> { <body> }` greedily and
	// non-recursively: a nested block's closing brace terminates the outer
	// match. Nested composite types are not supported.
	StructBlock = regexp.MustCompile(`struct\s+(\w+)\s*\{([^}]+)\}`)

	// FieldLine matches one `<type-tokens> <identifier> ;` shape inside a
	// struct body. Only the first match per line is taken.
	FieldLine = regexp.MustCompile(`(\w+(?:\s+\w+)*)\s+(\w+)\s*;`)

	// FlashString matches F("...") constants kept in flash.
	FlashString = regexp.MustCompile(`F\("([^"]*)"\)`)

	// GrowableString matches heap-backed String declarations.
	GrowableString = regexp.MustCompile(`\bString\s+\w+\s*=`)

	// PointerString matches const char* declarations.
	PointerString = regexp.MustCompile(`\bconst char\*\s+\w+\s*=`)

	// StringConcat matches String + String expressions.
	StringConcat = regexp.MustCompile(`String\s*\+\s*String`)

	// JSONBuffer matches fixed-capacity serialization buffers and captures
	// the declared capacity in bytes.
	JSONBuffer = regexp.MustCompile(`StaticJsonDocument<(\d+)>`)

	// LongDecl matches default-width long declarations. Long is not part of
	// the sizing model; it only feeds the type-usage sub-score as an
	// unoptimized declaration.
	LongDecl = regexp.MustCompile(`\blong\s+\w+\s*[=;]`)
)

// LineComment is the line-comment marker. Lines starting with it are skipped
// during field extraction and string idiom counting, and are the target of
// the comment-density signal.
const LineComment = "//"

// OptimizationCommentKeywords are matched case-insensitively against comment
// lines to count optimization-related commentary.
var OptimizationCommentKeywords = []*regexp.Regexp{
	regexp.MustCompile(`(?i)optimi[zs]`),
	regexp.MustCompile(`(?i)memory`),
	regexp.MustCompile(`(?i)saving`),
	regexp.MustCompile(`(?i)\bheap\b`),
	regexp.MustCompile(`(?i)\bflash\b`),
	regexp.MustCompile(`(?i)uint8_t`),
	regexp.MustCompile(`(?i)uint16_t`),
	regexp.MustCompile(`(?i)F\("`),
	regexp.MustCompile(`(?i)const char\*`),
}

// OptimizedDeclTags lists the fixed-width tags counted as optimized
// declarations by the type-usage sub-score.
var OptimizedDeclTags = []schema.PrimitiveType{
	schema.TypeUint8, schema.TypeUint16, schema.TypeUint32,
	schema.TypeInt8, schema.TypeInt16,
}

// WideDeclTags lists the default-width tags counted as unoptimized
// declarations by the type-usage sub-score. Long is handled separately via
// LongDecl since it is outside the sizing model.
var WideDeclTags = []schema.PrimitiveType{schema.TypeInt, schema.TypeFloat}

// NarrowFieldTypes are the field spellings counted as narrow by the
// structure sub-score.
var NarrowFieldTypes = map[string]struct{}{
	"uint8_t":  {},
	"uint16_t": {},
	"int8_t":   {},
	"int16_t":  {},
}

// fieldTypeTags maps surface field spellings to primitive type tags for
// structure sizing. Spellings outside this map fall back to the default
// field size.
var fieldTypeTags = map[string]schema.PrimitiveType{
	"uint8_t":  schema.TypeUint8,
	"uint16_t": schema.TypeUint16,
	"uint32_t": schema.TypeUint32,
	"int8_t":   schema.TypeInt8,
	"int16_t":  schema.TypeInt16,
	"int":      schema.TypeInt,
	"float":    schema.TypeFloat,
	"bool":     schema.TypeBool,
	"String":   schema.TypeHandle,
}

// FieldSize returns the byte size of a field's surface type spelling.
// Unrecognized spellings degrade to DefaultFieldSize, never to an error.
func FieldSize(spelling string) int {
	if tag, ok := fieldTypeTags[spelling]; ok {
		return schema.SizeOf(tag)
	}
	return schema.DefaultFieldSize
}

// IsNarrowField reports whether a field spelling counts as narrow for the
// structure sub-score.
func IsNarrowField(spelling string) bool {
	_, ok := NarrowFieldTypes[spelling]
	return ok
}
