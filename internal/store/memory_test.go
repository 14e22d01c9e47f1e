package store

import (
	"testing"
	"time"

	"github.com/capefungi/forager/internal/forage"
)

func TestSaveAndGetFresh(t *testing.T) {
	s := NewMemoryStore(time.Hour)

	if _, _, err := s.GetFresh("tokai"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for empty store, got %v", err)
	}

	s.SaveReport("tokai", forage.ConditionsReport{Season: "Autumn"})

	report, fetchedAt, err := s.GetFresh("tokai")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Season != "Autumn" {
		t.Errorf("got report %+v", report)
	}
	if fetchedAt.IsZero() {
		t.Error("expected a fetch timestamp")
	}
}

func TestSaveReplacesPrevious(t *testing.T) {
	s := NewMemoryStore(time.Hour)

	s.SaveReport("tokai", forage.ConditionsReport{Season: "Autumn"})
	s.SaveReport("tokai", forage.ConditionsReport{Season: "Winter"})

	report, _, err := s.GetFresh("tokai")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Season != "Winter" {
		t.Errorf("expected latest report to win, got %+v", report)
	}
}

func TestStaleEntryIsAMiss(t *testing.T) {
	s := NewMemoryStore(10 * time.Millisecond)

	s.SaveReport("tokai", forage.ConditionsReport{Season: "Autumn"})
	time.Sleep(20 * time.Millisecond)

	if _, _, err := s.GetFresh("tokai"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for stale entry, got %v", err)
	}
}

func TestZeroMaxAgeMeansUnlimited(t *testing.T) {
	s := NewMemoryStore(0)

	s.SaveReport("tokai", forage.ConditionsReport{Season: "Autumn"})

	if _, _, err := s.GetFresh("tokai"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
