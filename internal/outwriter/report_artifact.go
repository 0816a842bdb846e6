package outwriter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/farmtech/memscope/internal/contract"
	"github.com/farmtech/memscope/schema"
)

// ReportArtifactName builds the timestamped artifact filename for a report,
// e.g. "score_firmware_20260824_153000.json".
func ReportArtifactName(kind schema.ReportKind, sourcePath string, at time.Time) string {
	base := filepath.Base(sourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		base = "source"
	}
	return fmt.Sprintf("%s_%s_%s.json", kind, base, at.Format(contract.ReportStampFormat))
}

// WriteReportArtifact writes the structured report record as indented JSON
// into dir and returns the artifact path. The artifact is written in a
// single operation so a failed run never leaves a partial report behind.
func WriteReportArtifact(dir string, kind schema.ReportKind, sourcePath string, report any) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(dir, ReportArtifactName(kind, sourcePath, time.Now()))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}
