package core

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"time"
	"unicode/utf8"

	"github.com/farmtech/memscope/internal/contract"
	"github.com/farmtech/memscope/internal/outwriter"
	"github.com/farmtech/memscope/schema"
)

// ExecutorFunc defines the function signature for executing analyzer modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error

// LoadCorpus reads the source file at path and returns its content as a
// string. A missing file maps to ErrSourceNotFound; unreadable or
// non-UTF-8 content maps to SourceReadError.
func LoadCorpus(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &contract.SourceReadError{Path: path, Err: contract.ErrSourceNotFound}
		}
		return "", &contract.SourceReadError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &contract.SourceReadError{Path: path, Err: errors.New("content is not valid UTF-8")}
	}
	return string(data), nil
}

// GetScoreReport loads one source file and evaluates it against the
// optimization rubric. It is the shared entry point for the score command
// and the MCP score tool.
func GetScoreReport(path string) (schema.ScoreReport, error) {
	corpus, err := LoadCorpus(path)
	if err != nil {
		return schema.ScoreReport{}, err
	}
	analysis := BuildAnalysis(path, corpus)
	return Score(analysis, corpus), nil
}

// GetComparisonReport loads two source files and computes the memory delta
// between them. It is the shared entry point for the compare command and
// the MCP compare tool.
func GetComparisonReport(originalPath, optimizedPath string) (schema.ComparisonReport, error) {
	originalCorpus, err := LoadCorpus(originalPath)
	if err != nil {
		return schema.ComparisonReport{}, err
	}
	optimizedCorpus, err := LoadCorpus(optimizedPath)
	if err != nil {
		return schema.ComparisonReport{}, err
	}
	original := BuildAnalysis(originalPath, originalCorpus)
	optimized := BuildAnalysis(optimizedPath, optimizedCorpus)
	return Compare(&original, &optimized)
}

// ExecuteScore runs the rubric evaluation for a single source file and
// prints results to stdout. It serves as the main entry point for the
// 'score' mode.
func ExecuteScore(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()

	outwriter.LogScoreHeader(cfg)

	report, err := GetScoreReport(cfg.SourcePath)
	if err != nil {
		return err
	}

	recordScoreRun(mgr, cfg, start, report)

	if path, err := outwriter.WriteReportArtifact(cfg.ReportDir, schema.ScoreKind, cfg.SourcePath, report); err != nil {
		contract.LogWarn("Cannot write report artifact", err)
	} else {
		outwriter.LogReportArtifact(cfg, path)
	}

	duration := time.Since(start)
	return outwriter.PrintScoreReport(report, cfg, duration)
}

// ExecuteCompare runs two analyses (original and optimized) and computes
// the memory delta. It serves as the main entry point for the 'compare'
// mode.
func ExecuteCompare(ctx context.Context, cfg *contract.Config, mgr contract.HistoryManager) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()

	outwriter.LogCompareHeader(cfg)

	report, err := GetComparisonReport(cfg.OriginalPath, cfg.OptimizedPath)
	if err != nil {
		return err
	}

	recordComparisonRun(mgr, cfg, start, report)

	if path, err := outwriter.WriteReportArtifact(cfg.ReportDir, schema.ComparisonKind, cfg.OptimizedPath, report); err != nil {
		contract.LogWarn("Cannot write report artifact", err)
	} else {
		outwriter.LogReportArtifact(cfg, path)
	}

	duration := time.Since(start)
	return outwriter.PrintComparisonReport(report, cfg, duration)
}

// ExecuteRubric displays the scoring rubric and sizing model. No source
// analysis is performed.
func ExecuteRubric(ctx context.Context, cfg *contract.Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return outwriter.PrintRubricDefinitions(cfg)
}

// recordScoreRun tracks a score run in the history store. Tracking is
// advisory, so every failure degrades to a warning.
func recordScoreRun(mgr contract.HistoryManager, cfg *contract.Config, start time.Time, report schema.ScoreReport) {
	store := mgr.GetRunStore()
	if store == nil {
		return
	}
	runID, err := store.BeginRun(start, map[string]any{
		"kind":   string(schema.ScoreKind),
		"source": cfg.SourcePath,
		"output": string(cfg.Output),
	})
	if err != nil {
		contract.LogWarn("Cannot begin history run", err)
		return
	}
	if err := store.RecordScore(runID, report); err != nil {
		contract.LogWarn("Cannot record score run", err)
	}
	if err := store.EndRun(runID, time.Now()); err != nil {
		contract.LogWarn("Cannot end history run", err)
	}
}

// recordComparisonRun tracks a comparison run in the history store.
func recordComparisonRun(mgr contract.HistoryManager, cfg *contract.Config, start time.Time, report schema.ComparisonReport) {
	store := mgr.GetRunStore()
	if store == nil {
		return
	}
	runID, err := store.BeginRun(start, map[string]any{
		"kind":      string(schema.ComparisonKind),
		"original":  cfg.OriginalPath,
		"optimized": cfg.OptimizedPath,
		"output":    string(cfg.Output),
	})
	if err != nil {
		contract.LogWarn("Cannot begin history run", err)
		return
	}
	if err := store.RecordComparison(runID, report); err != nil {
		contract.LogWarn("Cannot record comparison run", err)
	}
	if err := store.EndRun(runID, time.Now()); err != nil {
		contract.LogWarn("Cannot end history run", err)
	}
}
