package contract

import (
	"errors"
	"fmt"
)

// Named error kinds surfaced at the command boundary. Pattern-matching
// failures are never errors; they degrade to zero counts or default sizes.
var (
	// ErrSourceNotFound marks a corpus path that does not exist.
	ErrSourceNotFound = errors.New("source file not found")

	// ErrInvalidInput marks a comparison requested with a missing or
	// malformed counterpart analysis.
	ErrInvalidInput = errors.New("invalid input")
)

// SourceReadError marks a corpus file that exists but cannot be read or
// decoded. It aborts that analysis only.
type SourceReadError struct {
	Path string
	Err  error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("cannot read source %s: %v", e.Path, e.Err)
}

func (e *SourceReadError) Unwrap() error {
	return e.Err
}
