package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"plagcheck/internal/adapter/similarity"
	"plagcheck/internal/domain"
	"plagcheck/internal/port"
)

// CheckUseCase scores one candidate document against an original.
type CheckUseCase struct {
	reader    port.DocumentReader
	writer    port.ResultWriter
	tokenizer port.Tokenizer
	history   port.HistoryStore
	backend   string
	logger    *slog.Logger
	now       func() time.Time
}

// NewCheckUseCase creates a new check use case. backend names the
// tokenizer backend recorded in reports.
func NewCheckUseCase(
	reader port.DocumentReader,
	writer port.ResultWriter,
	tokenizer port.Tokenizer,
	history port.HistoryStore,
	backend string,
	logger *slog.Logger,
) *CheckUseCase {
	return &CheckUseCase{
		reader:    reader,
		writer:    writer,
		tokenizer: tokenizer,
		history:   history,
		backend:   backend,
		logger:    logger,
		now:       time.Now,
	}
}

// CheckRequest names the three files of a check.
type CheckRequest struct {
	OriginalPath  string
	CandidatePath string
	ResultPath    string
}

// Check reads both documents, scores them and writes the result file. Both
// documents are validated before anything is written, so a failed check
// leaves no result file behind.
func (u *CheckUseCase) Check(ctx context.Context, req CheckRequest) (domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return domain.Report{}, err
	}

	original, err := u.reader.ReadDocument(req.OriginalPath)
	if err != nil {
		return domain.Report{}, fmt.Errorf("read original: %w", err)
	}
	candidate, err := u.reader.ReadDocument(req.CandidatePath)
	if err != nil {
		return domain.Report{}, fmt.Errorf("read candidate: %w", err)
	}

	report, err := u.score(original, candidate)
	if err != nil {
		return domain.Report{}, err
	}
	report.OriginalPath = req.OriginalPath
	report.CandidatePath = req.CandidatePath
	report.ResultPath = req.ResultPath

	if err := ctx.Err(); err != nil {
		return domain.Report{}, err
	}
	if err := u.writer.WriteResult(req.ResultPath, report.Similarity.Score); err != nil {
		return domain.Report{}, fmt.Errorf("write result: %w", err)
	}

	if err := u.history.Record(report); err != nil {
		u.logger.Warn("failed to record check in history", "id", report.ID, "error", err)
	}

	u.logger.Debug("check complete",
		"id", report.ID,
		"candidate", req.CandidatePath,
		"score", report.Similarity.Score,
	)
	return report, nil
}

// score tokenizes both texts and builds an unsaved report.
func (u *CheckUseCase) score(original, candidate string) (domain.Report, error) {
	originalTokens := u.tokenizer.Tokenize(original)
	candidateTokens := u.tokenizer.Tokenize(candidate)
	u.logger.Debug("tokenized documents",
		"original_tokens", len(originalTokens),
		"candidate_tokens", len(candidateTokens),
	)

	sim := similarity.Compute(originalTokens, candidateTokens)
	u.logger.Debug("similarity computed",
		"jaccard", sim.Jaccard,
		"cosine", sim.Cosine,
		"score", sim.Score,
	)

	id, err := uuid.NewV7()
	if err != nil {
		return domain.Report{}, fmt.Errorf("generate report id: %w", err)
	}

	return domain.Report{
		ID:              id.String(),
		Backend:         u.backend,
		OriginalTokens:  len(originalTokens),
		CandidateTokens: len(candidateTokens),
		Similarity:      sim,
		CreatedAt:       u.now().UTC(),
	}, nil
}
