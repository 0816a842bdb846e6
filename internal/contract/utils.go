package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/farmtech/memscope/schema"
)

// DateTimeFormat is the timestamp layout used in console and CSV output.
const DateTimeFormat = "2006-01-02 15:04"

// ReportStampFormat is the timestamp layout embedded in report artifact names.
const ReportStampFormat = "20060102_150405"

// Color variables for console output.
var (
	ExcellentColor = color.New(color.FgGreen, color.Bold) // excellentColor marks a fully optimized source.
	GoodColor      = color.New(color.FgCyan)              // goodColor marks solid progress with minor gaps.
	FairColor      = color.New(color.FgYellow)            // fairColor marks standard caution, not bold.
	NeedsWorkColor = color.New(color.FgRed, color.Bold)   // needsWorkColor marks a source that needs attention.
)

// GetPlainLabel returns the plain text grade label for the given score
// percentage. This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(score float64) string {
	return string(schema.GradeFor(score))
}

// GetColorLabel returns a colored grade label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(score float64) string {
	text := GetPlainLabel(score)

	switch schema.GradeFor(score) {
	case schema.ExcellentGrade, schema.VeryGoodGrade:
		return ExcellentColor.Sprint(text)
	case schema.GoodGrade:
		return GoodColor.Sprint(text)
	case schema.FairGrade:
		return FairColor.Sprint(text)
	default: // "needs work"
		return NeedsWorkColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for run history.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".memscope_history.db"
	}
	return filepath.Join(homeDir, ".memscope_history.db")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
