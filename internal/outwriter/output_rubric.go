package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/farmtech/memscope/internal/contract"
	"github.com/farmtech/memscope/schema"
)

// rubricComponent is one row of the scoring rubric definition.
type rubricComponent struct {
	Name     string  `json:"name"`
	MaxScore float64 `json:"max_score"`
	Measures string  `json:"measures"`
}

// rubricRenderModel is the full rubric definition for structured output.
type rubricRenderModel struct {
	Title      string            `json:"title"`
	Components []rubricComponent `json:"components"`
	Sizes      map[string]int    `json:"type_sizes_bytes"`
	Grades     map[string]string `json:"grade_bands"`
}

// buildRubricRenderModel constructs the rubric model from the scoring constants.
func buildRubricRenderModel() rubricRenderModel {
	sizes := make(map[string]int, len(schema.AllPrimitiveTypes))
	for _, tag := range schema.AllPrimitiveTypes {
		sizes[string(tag)] = schema.SizeOf(tag)
	}

	return rubricRenderModel{
		Title: "Memscope Optimization Rubric",
		Components: []rubricComponent{
			{Name: "types", MaxScore: schema.TypeScoreMax, Measures: "Narrow fixed-width integers over default-width int/float/long"},
			{Name: "strings", MaxScore: schema.StringScoreMax, Measures: "F() macros and const char* over heap-backed String objects"},
			{Name: "structures", MaxScore: schema.StructureScoreMax, Measures: "Share of narrow fields inside struct definitions"},
			{Name: "buffers", MaxScore: schema.BufferScoreMax, Measures: fmt.Sprintf("Smallest serialization buffer capacity (full marks at <= %d bytes)", schema.SmallBufferTier)},
			{Name: "comments", MaxScore: schema.CommentScoreMax, Measures: fmt.Sprintf("Optimization-related comment lines (full marks at >= %d)", schema.HighCommentTier)},
		},
		Sizes: sizes,
		Grades: map[string]string{
			string(schema.ExcellentGrade): ">= 90",
			string(schema.VeryGoodGrade):  ">= 80",
			string(schema.GoodGrade):      ">= 70",
			string(schema.FairGrade):      ">= 60",
			string(schema.NeedsWorkGrade): "< 60",
		},
	}
}

// PrintRubricDefinitions outputs the scoring rubric and sizing model,
// dispatching based on the output format configured.
func PrintRubricDefinitions(cfg *contract.Config) error {
	model := buildRubricRenderModel()

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeJSON(w, model)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg, func(w io.Writer) error {
			header := []string{"component", "max_score", "measures"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				for _, c := range model.Components {
					rec := []string{c.Name, strconv.FormatFloat(c.MaxScore, 'f', 0, 64), c.Measures}
					if err := csvWriter.Write(rec); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg, func(w io.Writer) error {
			return writeRubricTables(model, w)
		}, "Wrote table")
	}
}

// writeRubricTables writes the human-readable rubric and sizing tables.
func writeRubricTables(model rubricRenderModel, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "%s\n\n", model.Title); err != nil {
		return err
	}

	// --- 1. Rubric components ---
	components := tablewriter.NewWriter(writer)
	components.Header([]string{"Component", "Max", "Measures"})
	var rows [][]string
	for _, c := range model.Components {
		rows = append(rows, []string{c.Name, strconv.FormatFloat(c.MaxScore, 'f', 0, 64), c.Measures})
	}
	if err := components.Bulk(rows); err != nil {
		return err
	}
	if err := components.Render(); err != nil {
		return err
	}

	// --- 2. Sizing model ---
	if _, err := fmt.Fprintf(writer, "\nSizing model (bytes per declaration):\n"); err != nil {
		return err
	}
	sizes := tablewriter.NewWriter(writer)
	sizes.Header([]string{"Type", "Bytes"})
	rows = rows[:0]
	for _, tag := range schema.AllPrimitiveTypes {
		rows = append(rows, []string{string(tag), strconv.Itoa(schema.SizeOf(tag))})
	}
	if err := sizes.Bulk(rows); err != nil {
		return err
	}
	if err := sizes.Render(); err != nil {
		return err
	}

	// --- 3. Grade bands ---
	if _, err := fmt.Fprintf(writer, "\nGrade bands: excellent >= 90, very good >= 80, good >= 70, fair >= 60, needs work < 60\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Growable String estimate: %d bytes, const char* pointer: %d bytes, F() strings: 0 bytes\n",
		schema.GrowableStringEstimate, schema.PointerStringSize); err != nil {
		return err
	}
	return nil
}
