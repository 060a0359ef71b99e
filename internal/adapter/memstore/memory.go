package memstore

import (
	"fmt"
	"sync"

	"plagcheck/internal/adapter/store"
	"plagcheck/internal/domain"
)

// MemoryHistory keeps reports in insertion order for the life of the process.
type MemoryHistory struct {
	mu      sync.RWMutex
	reports []domain.Report
	byID    map[string]int
}

func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{
		byID: make(map[string]int),
	}
}

func (s *MemoryHistory) Record(report domain.Report) error {
	if report.ID == "" {
		return fmt.Errorf("report has no id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.byID[report.ID]; ok {
		s.reports[i] = report
		return nil
	}
	s.byID[report.ID] = len(s.reports)
	s.reports = append(s.reports, report)
	return nil
}

func (s *MemoryHistory) Get(id string) (domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return domain.Report{}, fmt.Errorf("%w: %s", store.ErrReportNotFound, id)
	}
	return s.reports[i], nil
}

func (s *MemoryHistory) List(limit int) ([]domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.reports)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.Report, 0, n)
	for i := len(s.reports) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, s.reports[i])
	}
	return out, nil
}

func (s *MemoryHistory) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reports), nil
}

func (s *MemoryHistory) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = nil
	s.byID = make(map[string]int)
	return nil
}

func (s *MemoryHistory) Close() error {
	return nil
}
