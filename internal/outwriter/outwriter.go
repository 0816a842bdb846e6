// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"golang.org/x/term"

	"github.com/farmtech/memscope/internal/contract"
	"github.com/farmtech/memscope/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteScore prints a score report using the configured output format.
func (ow *OutWriter) WriteScore(report schema.ScoreReport, cfg *contract.Config, duration time.Duration) error {
	return PrintScoreReport(report, cfg, duration)
}

// WriteComparison prints a comparison report using the configured output format.
func (ow *OutWriter) WriteComparison(report schema.ComparisonReport, cfg *contract.Config, duration time.Duration) error {
	return PrintComparisonReport(report, cfg, duration)
}

// getTableWidth returns the terminal width to lay tables out against,
// honoring an absolute override from flag/env before auto-detection.
func getTableWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		// Conservative default for narrow terminals and CI
		return 80
	}
	return detectedWidth
}

// getMaxTableItemWidth calculates the maximum width for finding and problem
// text in table output based on terminal width.
func getMaxTableItemWidth(cfg *contract.Config) int {
	// Reserve space for the marker column plus borders and padding
	available := getTableWidth(cfg) - 20
	if available < 20 {
		return 20
	}
	if available > 90 {
		return 90
	}
	return available
}
