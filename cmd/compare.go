package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/farmtech/memscope/core"
	"github.com/farmtech/memscope/internal/contract"
)

// compareCmd compares the memory footprint of two source versions.
var compareCmd = &cobra.Command{
	Use:   "compare [original-file] [optimized-file]",
	Short: "Compare the estimated memory footprint of two firmware versions.",
	Long: `Analyze an original and an optimized version of the same firmware source
and report the footprint delta between them.

The comparison covers:
- Total estimated RAM footprint and percentage saved
- Per-type declaration count changes (only types that differ)
- Fixed serialization buffer capacity changes
- Recommendations naming the optimizations that were applied

When invoked without arguments, the conventional filenames
firmware_original.ino and firmware_optimized.ino are tried in the
current directory (override with --compare-candidates).

A timestamped JSON report artifact is always written alongside the
console output.

Examples:
  # Compare two explicit versions
  memscope compare before.ino after.ino

  # Use the conventional filenames in the current directory
  memscope compare

  # Emit the full delta record as JSON
  memscope compare before.ino after.ino --output json`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return errors.New("provide both files or none")
		}
		return cobra.MaximumNArgs(2)(cmd, args)
	},
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if len(args) == 2 {
			cfg.OriginalPath = args[0]
			cfg.OptimizedPath = args[1]
		} else {
			cfg.OriginalPath = cfg.CompareCandidates[0]
			cfg.OptimizedPath = cfg.CompareCandidates[1]
		}
		if err := core.ExecuteCompare(rootCtx, cfg, historyManager); err != nil {
			contract.LogFatal("Cannot run comparison", err)
		}
	},
}
