package matchmaking

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/probable-spork/internal/metrics"
)

// TickRunner is the slice of the service the scheduler drives.
type TickRunner interface {
	Tick() int
}

// Scheduler invokes the pairing tick at a fixed cadence. At most one tick
// runs at a time, Stop interrupts the sleep between ticks and waits for any
// in-flight tick to finish, and a failing tick never stops the loop.
type Scheduler struct {
	runner   TickRunner
	interval time.Duration
	metrics  metrics.Metrics

	cancel context.CancelFunc
	done   chan struct{}
}

// NewScheduler creates a scheduler driving runner every interval.
func NewScheduler(runner TickRunner, interval time.Duration, metricsSvc metrics.Metrics) *Scheduler {
	return &Scheduler{
		runner:   runner,
		interval: interval,
		metrics:  metricsSvc,
	}
}

// Start launches the tick loop in a background goroutine. Calling Start on a
// running scheduler is a no-op.
func (s *Scheduler) Start() {
	if s.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.loop(ctx)
	log.Info("Matchmaking scheduler started", "interval", s.interval)
}

// Stop cancels the loop and blocks until the in-flight tick, if any, has
// completed. Calling Stop on a stopped scheduler is a no-op.
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.cancel = nil
	log.Info("Matchmaking scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runTick()
		}
	}
}

// runTick executes one tick, isolating failures: a panic inside the pairing
// code is logged and counted, and the loop continues on the next interval.
func (s *Scheduler) runTick() {
	defer func() {
		if r := recover(); r != nil {
			log.Error("Pairing tick failed", "panic", r)
			s.metrics.IncTickErrors()
		}
	}()

	s.metrics.IncTicks()
	if paired := s.runner.Tick(); paired > 0 {
		log.Info("Pairing tick completed", "pairings", paired)
	}
}
