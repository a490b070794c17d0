package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"fishcast/internal/weather"
)

// Scheduler periodically refreshes scored outlooks for configured spots.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *weather.Service
	spots     []weather.Spot
	interval  time.Duration
}

// New creates a new Scheduler.
func New(spots []weather.Spot, interval time.Duration, service *weather.Service) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		spots:     spots,
		interval:  interval,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if len(s.spots) == 0 {
		log.Println("scheduler: no spots configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		log.Println("scheduler: refreshing outlooks")

		var wg sync.WaitGroup
		for _, spot := range s.spots {
			spot := spot
			wg.Add(1)
			go func() {
				defer wg.Done()

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if _, err := s.service.Refresh(ctx, spot); err != nil {
					log.Printf("scheduler: refresh failed for %s: %v", spot.Key(), err)
				}
			}()
		}
		wg.Wait()
		log.Println("scheduler: outlook refresh complete")
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
