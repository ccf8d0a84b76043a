package services

import (
	"context"
	"log"
	"sync/atomic"
	"time"
)

// Sweeper is the external timer that invokes the daily completion sweep.
// The lifecycle service itself has no scheduling knowledge; this component
// only decides when to call it. Runs are single-flight: a tick that arrives
// while a sweep is still in progress is skipped.
type Sweeper struct {
	reservations *ReservationService
	hour         int // local hour of day to run at
	running      atomic.Bool
	now          func() time.Time
}

func NewSweeper(reservations *ReservationService) *Sweeper {
	return &Sweeper{reservations: reservations, hour: 2, now: time.Now}
}

// Start launches the timer loop. It returns immediately; the loop stops
// when ctx is cancelled.
func (s *Sweeper) Start(ctx context.Context) {
	go s.loop(ctx)
}

func (s *Sweeper) loop(ctx context.Context) {
	for {
		next := s.nextRun()
		timer := time.NewTimer(next.Sub(s.now()))
		select {
		case <-ctx.Done():
			timer.Stop()
			log.Println("Reservation sweeper stopped")
			return
		case <-timer.C:
			s.RunOnce()
		}
	}
}

// RunOnce executes one sweep unless another is already in flight.
func (s *Sweeper) RunOnce() {
	if !s.running.CompareAndSwap(false, true) {
		log.Println("Completion sweep already running, skipping")
		return
	}
	defer s.running.Store(false)

	log.Println("Starting automatic update of completed reservations")
	count, err := s.reservations.SweepCompleted()
	if err != nil {
		// The next scheduled run is the retry.
		log.Printf("Completion sweep failed: %v", err)
		return
	}
	log.Printf("Updated %d reservations to COMPLETED status", count)
}

// nextRun is the next occurrence of the configured local hour.
func (s *Sweeper) nextRun() time.Time {
	now := s.now()
	run := time.Date(now.Year(), now.Month(), now.Day(), s.hour, 0, 0, 0, now.Location())
	if !run.After(now) {
		run = run.AddDate(0, 0, 1)
	}
	return run
}
