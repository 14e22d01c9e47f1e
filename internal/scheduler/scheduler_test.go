package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/capefungi/forager/internal/forage"
	"github.com/capefungi/forager/internal/store"
)

type countingChecker struct {
	mu    sync.Mutex
	calls int
}

func (c *countingChecker) Check(_ context.Context, _ forage.Suburb) (forage.ConditionsReport, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return forage.ConditionsReport{Season: "Autumn"}, nil
}

func (c *countingChecker) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// Sub-minute intervals must schedule as-is rather than rounding up to
// whole minutes.
func TestStartHonorsSubMinuteInterval(t *testing.T) {
	checker := &countingChecker{}
	svc := forage.NewService(store.NewMemoryStore(time.Hour), checker)

	sched := New([]forage.Suburb{"tokai"}, 50*time.Millisecond, svc)
	if err := sched.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer sched.Stop()

	deadline := time.Now().Add(5 * time.Second)
	for checker.count() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("prefetch job never ran with a 50ms interval")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestStartDisabledWithoutInterval(t *testing.T) {
	checker := &countingChecker{}
	svc := forage.NewService(store.NewMemoryStore(time.Hour), checker)

	sched := New(forage.Suburbs(), 0, svc)
	if err := sched.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer sched.Stop()

	time.Sleep(50 * time.Millisecond)
	if got := checker.count(); got != 0 {
		t.Fatalf("expected no prefetches with prefetch disabled, got %d", got)
	}
}
