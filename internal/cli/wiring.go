package cli

import (
	"fmt"

	"plagcheck/config"
	"plagcheck/internal/adapter/analyzer"
	"plagcheck/internal/adapter/fs"
	"plagcheck/internal/adapter/memstore"
	"plagcheck/internal/adapter/store"
	"plagcheck/internal/port"
	"plagcheck/internal/usecase"
)

// newTokenizer builds the configured tokenizer. With cached set, token
// sequences are memoized so the original is tokenized once per batch.
func newTokenizer(cfg *config.Config, cached bool) (port.Tokenizer, string, error) {
	seg, err := analyzer.NewSegmenter(cfg.Tokenizer)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create segmenter: %w", err)
	}
	tok := analyzer.NewTokenizer(seg)
	if cached && cfg.Tokenizer.CacheSize > 0 {
		return analyzer.NewCachedTokenizer(tok, cfg.Tokenizer.CacheSize), tok.Backend(), nil
	}
	return tok, tok.Backend(), nil
}

// openHistory opens the on-disk ledger, or an in-memory one when history is
// disabled.
func openHistory(cfg *config.Config, dir string) (port.HistoryStore, error) {
	if !cfg.History.Enabled {
		return memstore.NewMemoryHistory(), nil
	}

	if err := config.EnsureDataDir(dir); err != nil {
		return nil, fmt.Errorf("failed to create .plagcheck directory: %w", err)
	}
	h, err := store.NewBoltHistory(config.HistoryDBPath(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	return h, nil
}

// checkDeps holds a wired check use case and the adapters the caller may
// need to inspect or close.
type checkDeps struct {
	check     *usecase.CheckUseCase
	tokenizer port.Tokenizer
	history   port.HistoryStore
}

// newCheckUseCase wires a check use case from the loaded config. A ledger
// that cannot be opened is replaced by an in-memory one, so checks still
// write their result.
func newCheckUseCase(cached bool) (*checkDeps, error) {
	cfg := GetConfig()
	logger := GetLogger()

	tok, name, err := newTokenizer(cfg, cached)
	if err != nil {
		return nil, err
	}
	history, err := openHistory(cfg, GetRootDir())
	if err != nil {
		logger.Warn("history unavailable, this run will not be recorded", "error", err)
		history = memstore.NewMemoryHistory()
	}

	return &checkDeps{
		check:     usecase.NewCheckUseCase(fs.NewReader(), fs.NewWriter(), tok, history, name, logger),
		tokenizer: tok,
		history:   history,
	}, nil
}
