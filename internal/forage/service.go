package forage

import (
	"context"
	"log"

	"github.com/google/uuid"
)

// CheckResult is the outcome of a successful conditions check. Token
// identifies this particular check so the page can correlate what it
// displays with server logs; Cached marks a report served from the cache
// because the upstream was unreachable.
type CheckResult struct {
	Token  string
	Report ConditionsReport
	Cached bool
}

// Service orchestrates the upstream checker and the report cache.
type Service struct {
	store   Store
	checker Checker
}

// NewService creates a new Service.
func NewService(store Store, checker Checker) *Service {
	return &Service{
		store:   store,
		checker: checker,
	}
}

// CheckConditions fetches the current report for a suburb and caches it.
// When the upstream fails but a fresh-enough cached report exists, that
// report is returned with Cached set rather than surfacing the failure.
func (s *Service) CheckConditions(ctx context.Context, suburb Suburb) (CheckResult, error) {
	report, err := s.checker.Check(ctx, suburb)
	if err != nil {
		if cached, fetchedAt, cerr := s.store.GetFresh(suburb); cerr == nil {
			log.Printf("conditions fetch failed for %s, serving cached report from %s: %v",
				suburb, fetchedAt.Format("15:04:05"), err)
			return CheckResult{Token: uuid.NewString(), Report: cached, Cached: true}, nil
		}
		return CheckResult{}, err
	}

	s.store.SaveReport(suburb, report)
	return CheckResult{Token: uuid.NewString(), Report: report}, nil
}

// Prefetch fetches and caches the report for a suburb without producing a
// check result. Used by the scheduler to keep the cache warm.
func (s *Service) Prefetch(ctx context.Context, suburb Suburb) error {
	report, err := s.checker.Check(ctx, suburb)
	if err != nil {
		return err
	}
	s.store.SaveReport(suburb, report)
	return nil
}
