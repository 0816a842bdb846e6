package cmd

import (
	"github.com/spf13/cobra"

	"github.com/farmtech/memscope/core"
	"github.com/farmtech/memscope/internal/contract"
)

// rubricCmd displays the formal definitions of the scoring rubric.
var rubricCmd = &cobra.Command{
	Use:   "rubric",
	Short: "Display the scoring rubric, sizing model, and grade bands",
	Long: `Show the formal definitions behind the optimization score.

Provides complete transparency into how sources are scored, including:
- The five rubric components and their point caps
- The per-type byte sizes of the estimation model
- String cost estimates and buffer tiers
- Grade band thresholds

No source analysis is performed - this is purely informational.

Use this to:
- Understand what each rubric component measures
- Explain scoring logic to your team
- Document the estimation methodology

Examples:
  # Show the rubric
  memscope rubric

  # Emit the rubric as JSON
  memscope rubric --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRubric(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot display rubric", err)
		}
	},
}
