package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/capefungi/forager/internal/forage"
)

// Scheduler periodically pre-warms the conditions cache for every
// supported suburb so the page usually hits a fresh cache even when the
// upstream is slow.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *forage.Service
	suburbs   []forage.Suburb
	interval  time.Duration
}

// New creates a new Scheduler.
func New(suburbs []forage.Suburb, interval time.Duration, service *forage.Service) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		suburbs:   suburbs,
		interval:  interval,
	}
}

// Start schedules the periodic prefetch job and starts the underlying
// scheduler. A non-positive interval disables prefetching entirely.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		log.Println("scheduler: prefetch disabled")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).Do(func() {
		log.Println("scheduler: running conditions prefetch job")

		var wg sync.WaitGroup
		for _, suburb := range s.suburbs {
			suburb := suburb
			wg.Add(1)
			go func() {
				defer wg.Done()

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := s.service.Prefetch(ctx, suburb); err != nil {
					log.Printf("scheduler: prefetch failed for %s: %v", suburb, err)
				}
			}()
		}
		wg.Wait()
		log.Println("scheduler: completed conditions prefetch job")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
