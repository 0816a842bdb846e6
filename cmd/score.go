package cmd

import (
	"github.com/spf13/cobra"

	"github.com/farmtech/memscope/core"
	"github.com/farmtech/memscope/internal/contract"
)

// scoreCmd evaluates one source file against the optimization rubric.
var scoreCmd = &cobra.Command{
	Use:   "score <source-file>",
	Short: "Score a firmware source file against the memory optimization rubric.",
	Long: `Evaluate how well a firmware source file applies memory optimization practices.

The rubric awards up to 100 points across five components:
- Types (25): narrow fixed-width integers over default-width 'int'
- Strings (25): F() macros and const char* over heap-backed String
- Structures (20): share of narrow fields inside struct definitions
- Buffers (15): tight serialization buffer capacities
- Comments (15): explanatory optimization comments

The result includes findings (good practices detected), problems
(opportunities to improve), and a grade band.

A timestamped JSON report artifact is always written alongside the
console output.

Examples:
  # Score a source file
  memscope score firmware.ino

  # Export the rubric breakdown to CSV
  memscope score firmware.ino --output csv --output-file rubric.csv

  # Write the report artifact somewhere specific
  memscope score firmware.ino --report-dir ./reports`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		cfg.SourcePath = args[0]
		if err := core.ExecuteScore(rootCtx, cfg, historyManager); err != nil {
			contract.LogFatal("Cannot run score analysis", err)
		}
	},
}
