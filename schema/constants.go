package schema

// Custom string types for type safety.
type (
	// PrimitiveType represents one recognized declaration type tag.
	PrimitiveType string

	// OutputMode represents the format of the output.
	OutputMode string

	// Grade represents the classification band of an optimization score.
	Grade string

	// DatabaseBackend represents the database backend for run history.
	DatabaseBackend string

	// ReportKind represents the kind of report being emitted.
	ReportKind string
)

// All primitive type tags recognized by the pattern catalog.
// TypeHandle covers both the growable string handle and the raw string
// pointer: on the 32-bit target both occupy one pointer-sized slot.
const (
	TypeUint8  PrimitiveType = "uint8_t"
	TypeUint16 PrimitiveType = "uint16_t"
	TypeUint32 PrimitiveType = "uint32_t"
	TypeInt8   PrimitiveType = "int8_t"
	TypeInt16  PrimitiveType = "int16_t"
	TypeInt    PrimitiveType = "int"
	TypeFloat  PrimitiveType = "float"
	TypeBool   PrimitiveType = "bool"
	TypeHandle PrimitiveType = "handle"
)

// Sizing model constants, in bytes.
const (
	// DefaultFieldSize is the fallback for unrecognized field types.
	// A conservative over-estimate, never a failure.
	DefaultFieldSize = 4

	// GrowableStringEstimate is the fixed estimated average resident cost
	// of one growable String object.
	GrowableStringEstimate = 20

	// PointerStringSize is the resident cost of one const char* declaration.
	PointerStringSize = 4
)

// primitiveSizes maps each tag to its fixed byte size on the 32-bit target.
// The mapping is total over AllPrimitiveTypes and immutable for a run.
var primitiveSizes = map[PrimitiveType]int{
	TypeUint8:  1,
	TypeUint16: 2,
	TypeUint32: 4,
	TypeInt8:   4,
	TypeInt16:  2,
	TypeInt:    4,
	TypeFloat:  4,
	TypeBool:   1,
	TypeHandle: 4,
}

// AllPrimitiveTypes lists every tag in catalog order.
var AllPrimitiveTypes = []PrimitiveType{
	TypeUint8, TypeUint16, TypeUint32, TypeInt8, TypeInt16,
	TypeInt, TypeFloat, TypeBool, TypeHandle,
}

// SizeOf returns the byte size of a primitive type tag under the sizing
// model, falling back to DefaultFieldSize for anything outside the catalog.
func SizeOf(t PrimitiveType) int {
	if size, ok := primitiveSizes[t]; ok {
		return size
	}
	return DefaultFieldSize
}

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All report kinds emitted.
const (
	ComparisonKind ReportKind = "comparison"
	ScoreKind      ReportKind = "score"
)

// All grade bands, from best to worst.
const (
	ExcellentGrade Grade = "excellent"
	VeryGoodGrade  Grade = "very good"
	GoodGrade      Grade = "good"
	FairGrade      Grade = "fair"
	NeedsWorkGrade Grade = "needs work"
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidDatabaseBackends lists all valid history backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// GradeFor returns the classification band for a percent score in [0,100].
func GradeFor(percent float64) Grade {
	switch {
	case percent >= 90:
		return ExcellentGrade
	case percent >= 80:
		return VeryGoodGrade
	case percent >= 70:
		return GoodGrade
	case percent >= 60:
		return FairGrade
	default:
		return NeedsWorkGrade
	}
}
