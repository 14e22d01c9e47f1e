package store

import (
	"errors"
	"sync"
	"time"

	"github.com/capefungi/forager/internal/forage"
)

var (
	// ErrNotFound is returned when no fresh report is cached for a suburb.
	ErrNotFound = errors.New("no cached report for suburb")
)

type entry struct {
	report    forage.ConditionsReport
	fetchedAt time.Time
}

// MemoryStore is a concurrency-safe in-memory cache of the latest
// conditions report per suburb. Only the most recent report is kept; each
// save replaces the previous entry entirely.
type MemoryStore struct {
	mu sync.RWMutex

	data map[forage.Suburb]entry

	// maxAge bounds how old a cached report may be before GetFresh treats
	// it as a miss. <= 0 means unlimited.
	maxAge time.Duration
}

// NewMemoryStore creates a MemoryStore with the given freshness bound.
func NewMemoryStore(maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:   make(map[forage.Suburb]entry),
		maxAge: maxAge,
	}
}

// SaveReport stores the latest report for a suburb.
func (s *MemoryStore) SaveReport(suburb forage.Suburb, report forage.ConditionsReport) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[suburb] = entry{
		report:    report,
		fetchedAt: time.Now(),
	}
}

// GetFresh returns the cached report for a suburb along with its fetch
// time. A missing or stale entry yields ErrNotFound.
func (s *MemoryStore) GetFresh(suburb forage.Suburb) (forage.ConditionsReport, time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[suburb]
	if !ok {
		return forage.ConditionsReport{}, time.Time{}, ErrNotFound
	}

	if s.maxAge > 0 && time.Since(e.fetchedAt) > s.maxAge {
		return forage.ConditionsReport{}, time.Time{}, ErrNotFound
	}

	return e.report, e.fetchedAt, nil
}
