package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"plagcheck/internal/domain"
	"plagcheck/internal/port"
)

// ProgressFunc is called after each candidate is processed.
type ProgressFunc func(processed, total int, current string)

// BatchUseCase checks every candidate under a directory against one
// original. Each pair is scored independently.
type BatchUseCase struct {
	check  *CheckUseCase
	walker port.CandidateWalker
	logger *slog.Logger
}

// NewBatchUseCase creates a new batch use case.
func NewBatchUseCase(check *CheckUseCase, walker port.CandidateWalker, logger *slog.Logger) *BatchUseCase {
	return &BatchUseCase{
		check:  check,
		walker: walker,
		logger: logger,
	}
}

// BatchRequest names the original, the candidate tree and the directory
// receiving one result file per candidate.
type BatchRequest struct {
	OriginalPath  string
	CandidatesDir string
	OutputDir     string
}

// Run checks all candidates. Per-candidate failures are collected in the
// result; failing to read the original or to list candidates aborts.
func (u *BatchUseCase) Run(ctx context.Context, req BatchRequest, progress ProgressFunc) (*domain.BatchResult, error) {
	candidatesDir, err := filepath.Abs(req.CandidatesDir)
	if err != nil {
		return nil, fmt.Errorf("invalid candidates directory: %w", err)
	}
	outputDir, err := filepath.Abs(req.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("invalid output directory: %w", err)
	}
	if candidatesDir == outputDir {
		return nil, fmt.Errorf("output directory must differ from candidates directory: %s", outputDir)
	}
	originalPath, err := filepath.Abs(req.OriginalPath)
	if err != nil {
		return nil, fmt.Errorf("invalid original path: %w", err)
	}

	if _, err := u.check.reader.ReadDocument(originalPath); err != nil {
		return nil, fmt.Errorf("read original: %w", err)
	}

	files, err := u.walker.Walk(candidatesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to walk candidates: %w", err)
	}

	// Result files written by an earlier run into a nested output
	// directory are not candidates.
	candidates := make([]port.FileInfo, 0, len(files))
	for _, f := range files {
		if f.Path == originalPath || isWithin(outputDir, f.Path) {
			continue
		}
		candidates = append(candidates, f)
	}
	u.logger.Info("batch started", "original", originalPath, "candidates", len(candidates))

	result := &domain.BatchResult{OriginalPath: originalPath}
	for i, f := range candidates {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		report, err := u.check.Check(ctx, CheckRequest{
			OriginalPath:  originalPath,
			CandidatePath: f.Path,
			ResultPath:    filepath.Join(outputDir, filepath.FromSlash(f.RelPath)),
		})
		if err != nil {
			u.logger.Warn("candidate check failed", "candidate", f.Path, "error", err)
			result.Failures = append(result.Failures, domain.FailedCheck{
				CandidatePath: f.Path,
				Error:         err.Error(),
			})
		} else {
			result.Reports = append(result.Reports, report)
		}

		if progress != nil {
			progress(i+1, len(candidates), f.RelPath)
		}
	}

	u.logger.Info("batch finished", "checked", len(result.Reports), "failed", len(result.Failures))
	return result, nil
}

// isWithin reports whether path lies inside dir.
func isWithin(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
