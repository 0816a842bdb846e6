package outwriter

import (
	"fmt"
	"path/filepath"

	"github.com/farmtech/memscope/internal/contract"
)

// LogScoreHeader prints a concise, 1-line header for a score run.
func LogScoreHeader(cfg *contract.Config) {
	name := filepath.Base(cfg.SourcePath)
	if name == "" || name == "." {
		name = "source"
	}
	fmt.Printf("%sScoring: %s\n", emojiPrefix(cfg, "🔎 "), name)
}

// LogCompareHeader prints a concise, 1-line header for a comparison run.
func LogCompareHeader(cfg *contract.Config) {
	fmt.Printf("%sComparing: %s vs %s\n",
		emojiPrefix(cfg, "📊 "),
		filepath.Base(cfg.OriginalPath),
		filepath.Base(cfg.OptimizedPath))
}

// LogReportArtifact prints the path of the structured report artifact.
func LogReportArtifact(cfg *contract.Config, path string) {
	fmt.Printf("%sReport saved to %s\n", emojiPrefix(cfg, "💾 "), path)
}
