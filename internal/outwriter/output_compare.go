package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/farmtech/memscope/internal/contract"
	"github.com/farmtech/memscope/schema"
)

// PrintComparisonReport outputs the comparison report, dispatching based on the output format configured.
func PrintComparisonReport(report schema.ComparisonReport, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeComparisonJSON(report, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeComparisonCSV(report, cfg, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeComparisonTable(report, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeComparisonJSON handles opening the file and calling the JSON writer.
func writeComparisonJSON(report schema.ComparisonReport, cfg *contract.Config) error {
	return writeWithFile(cfg, func(w io.Writer) error {
		return writeJSON(w, report)
	}, "Wrote JSON")
}

// writeComparisonCSV handles opening the file and calling the CSV writer.
func writeComparisonCSV(report schema.ComparisonReport, cfg *contract.Config, intFmt string) error {
	return writeWithFile(cfg, func(w io.Writer) error {
		header := []string{"metric", "original", "optimized", "delta"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			rows := [][]string{
				{
					"memory_bytes",
					fmt.Sprintf(intFmt, report.Memory.OriginalBytes),
					fmt.Sprintf(intFmt, report.Memory.OptimizedBytes),
					fmt.Sprintf(intFmt, -report.Memory.SavedBytes),
				},
				{
					"buffer_bytes",
					fmt.Sprintf(intFmt, report.Buffers.OriginalBytes),
					fmt.Sprintf(intFmt, report.Buffers.OptimizedBytes),
					fmt.Sprintf(intFmt, -report.Buffers.SavedBytes),
				},
			}
			for _, tag := range schema.AllPrimitiveTypes {
				delta, ok := report.TypeDeltas[tag]
				if !ok {
					continue
				}
				rows = append(rows, []string{
					"type_" + string(tag),
					fmt.Sprintf(intFmt, delta.OriginalCount),
					fmt.Sprintf(intFmt, delta.OptimizedCount),
					fmt.Sprintf(intFmt, -delta.Diff),
				})
			}
			for _, rec := range rows {
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeComparisonTable writes the deltas in a custom comparison format.
func writeComparisonTable(report schema.ComparisonReport, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// --- 1. Define Headers (Comparison Mode) ---
	table.Header([]string{"Metric", "Original", "Optimized", "Delta"})

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// --- 3. Prepare Data Rows ---
	var red, green, yellow func(...any) string
	if cfg.UseColors {
		red = color.New(color.FgRed).SprintFunc()
		green = color.New(color.FgGreen).SprintFunc()
		yellow = color.New(color.FgYellow).SprintFunc()
	} else {
		red = fmt.Sprint
		green = fmt.Sprint
		yellow = fmt.Sprint
	}

	// Growth is bad here, so positive deltas go red and negative go green.
	formatDelta := func(deltaValue int) string {
		switch {
		case deltaValue > 0:
			// Explicitly add + sign
			return red(fmt.Sprintf("+%d ▲", deltaValue))
		case deltaValue < 0:
			// Keeps the - sign from the int
			return green(fmt.Sprintf("%d ▼", deltaValue))
		default:
			return yellow("0")
		}
	}

	data := [][]string{
		{
			"Memory (bytes)",
			fmt.Sprintf(intFmt, report.Memory.OriginalBytes),
			fmt.Sprintf(intFmt, report.Memory.OptimizedBytes),
			formatDelta(-report.Memory.SavedBytes),
		},
		{
			"Buffers (bytes)",
			fmt.Sprintf(intFmt, report.Buffers.OriginalBytes),
			fmt.Sprintf(intFmt, report.Buffers.OptimizedBytes),
			formatDelta(-report.Buffers.SavedBytes),
		},
	}
	for _, tag := range schema.AllPrimitiveTypes {
		delta, ok := report.TypeDeltas[tag]
		if !ok {
			continue
		}
		data = append(data, []string{
			string(tag) + " (vars)",
			fmt.Sprintf(intFmt, delta.OriginalCount),
			fmt.Sprintf(intFmt, delta.OptimizedCount),
			formatDelta(-delta.Diff),
		})
	}

	// --- 4. Render the table ---
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	savedStr := fmt.Sprintf("%d bytes (%s%%)", report.Memory.SavedBytes, fmtFloat(report.Memory.SavedPercent))
	if cfg.UseColors && report.Memory.SavedBytes > 0 {
		savedStr = green(savedStr)
	}
	if _, err := fmt.Fprintf(writer, "Memory saved: %s\n", savedStr); err != nil {
		return err
	}

	maxItem := getMaxTableItemWidth(cfg)
	for _, rec := range report.Recommendations {
		if _, err := fmt.Fprintf(writer, "  %s %s\n", emojiOrFallback(cfg, "💡", "[*]"), truncateItem(rec, maxItem)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(writer, "Comparison completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}
