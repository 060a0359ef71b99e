package port

import "plagcheck/internal/domain"

// HistoryStore is the ledger of completed checks.
type HistoryStore interface {
	Record(report domain.Report) error

	// List returns reports newest first. A limit <= 0 returns all of them.
	List(limit int) ([]domain.Report, error)

	Get(id string) (domain.Report, error)

	Count() (int, error)

	Clear() error

	Close() error
}
