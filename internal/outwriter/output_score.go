package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/farmtech/memscope/internal/contract"
	"github.com/farmtech/memscope/schema"
)

// PrintScoreReport outputs the score report, dispatching based on the output format configured.
func PrintScoreReport(report schema.ScoreReport, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeScoreJSON(report, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeScoreCSV(report, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeScoreTable(report, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeScoreJSON handles opening the file and calling the JSON writer.
func writeScoreJSON(report schema.ScoreReport, cfg *contract.Config) error {
	return writeWithFile(cfg, func(w io.Writer) error {
		return writeJSON(w, report)
	}, "Wrote JSON")
}

// writeScoreCSV handles opening the file and calling the CSV writer.
func writeScoreCSV(report schema.ScoreReport, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg, func(w io.Writer) error {
		header := []string{"component", "score", "max"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			rows := [][]string{
				{"types", fmtFloat(report.SubScores.Types), fmtFloat(schema.TypeScoreMax)},
				{"strings", fmtFloat(report.SubScores.Strings), fmtFloat(schema.StringScoreMax)},
				{"structures", fmtFloat(report.SubScores.Structures), fmtFloat(schema.StructureScoreMax)},
				{"buffers", fmtFloat(report.SubScores.Buffers), fmtFloat(schema.BufferScoreMax)},
				{"comments", fmtFloat(report.SubScores.Comments), fmtFloat(schema.CommentScoreMax)},
				{"total", fmtFloat(report.Score), strconv.Itoa(report.MaxScore)},
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

// writeScoreTable generates and writes the human-readable table.
func writeScoreTable(report schema.ScoreReport, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	table.Header([]string{"Component", "Score", "Max"})

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	data := [][]string{
		{"Types", fmtFloat(report.SubScores.Types), fmtFloat(schema.TypeScoreMax)},
		{"Strings", fmtFloat(report.SubScores.Strings), fmtFloat(schema.StringScoreMax)},
		{"Structures", fmtFloat(report.SubScores.Structures), fmtFloat(schema.StructureScoreMax)},
		{"Buffers", fmtFloat(report.SubScores.Buffers), fmtFloat(schema.BufferScoreMax)},
		{"Comments", fmtFloat(report.SubScores.Comments), fmtFloat(schema.CommentScoreMax)},
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	label := contract.GetPlainLabel(report.Score)
	if cfg.UseColors {
		label = contract.GetColorLabel(report.Score)
	}
	if _, err := fmt.Fprintf(writer, "Total: %s/%d (%s)\n", fmtFloat(report.Score), report.MaxScore, label); err != nil {
		return err
	}

	maxItem := getMaxTableItemWidth(cfg)
	for _, f := range report.Findings {
		if _, err := fmt.Fprintf(writer, "  %s %s\n", emojiOrFallback(cfg, "✅", "[+]"), truncateItem(f, maxItem)); err != nil {
			return err
		}
	}
	for _, p := range report.Problems {
		if _, err := fmt.Fprintf(writer, "  %s %s\n", emojiOrFallback(cfg, "⚠️ ", "[-]"), truncateItem(p, maxItem)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(writer, "%sRecommendations:\n", emojiPrefix(cfg, "💡 ")); err != nil {
		return err
	}
	for _, tip := range adviceFor(report.Grade) {
		if _, err := fmt.Fprintf(writer, "  - %s\n", tip); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(writer, "Estimated footprint: "+intFmt+" bytes across "+intFmt+" lines\n",
		report.Analysis.EstimatedMemoryBytes, report.Analysis.LineCount); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Scoring completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// emojiOrFallback returns the emoji marker when emojis are enabled, or the
// plain ASCII marker otherwise.
func emojiOrFallback(cfg *contract.Config, emoji, fallback string) string {
	if cfg.UseEmojis {
		return emoji
	}
	return fallback
}

// improvementAdvice is appended when the score sits below the very-good band.
var improvementAdvice = []string{
	"Review the data types in use",
	"Replace String with const char* where possible",
	"Use the F() macro for constant strings",
	"Optimize data structure layout",
	"Reduce StaticJsonDocument capacity",
	"Add comments explaining the optimizations",
}

// maintenanceAdvice is appended at or above the very-good band.
var maintenanceAdvice = []string{
	"Keep up the current practices",
	"Consider further optimizations if needed",
}

func adviceFor(grade schema.Grade) []string {
	switch grade {
	case schema.ExcellentGrade, schema.VeryGoodGrade:
		return maintenanceAdvice
	default:
		return improvementAdvice
	}
}
