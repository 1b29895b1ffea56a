package matchmaking

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/mauv0809/probable-spork/internal/metrics"
	"github.com/stretchr/testify/assert"
)

// tickFunc adapts a function to the TickRunner interface.
type tickFunc func() int

func (f tickFunc) Tick() int { return f() }

func TestSchedulerRunsTicks(t *testing.T) {
	var ticks atomic.Int64
	done := make(chan struct{})
	runner := tickFunc(func() int {
		if ticks.Add(1) == 3 {
			close(done)
		}
		return 0
	})

	s := NewScheduler(runner, 5*time.Millisecond, metrics.NewMock())
	s.Start()
	defer s.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not tick 3 times in time")
	}
}

func TestSchedulerStopBlocksUntilLoopExits(t *testing.T) {
	runner := tickFunc(func() int { return 0 })

	s := NewScheduler(runner, 5*time.Millisecond, metrics.NewMock())
	s.Start()
	s.Stop()

	// The loop has exited; its done channel is closed.
	select {
	case <-s.done:
	default:
		t.Fatal("Stop returned before the loop exited")
	}
}

func TestSchedulerStartTwice(t *testing.T) {
	runner := tickFunc(func() int { return 0 })

	s := NewScheduler(runner, 5*time.Millisecond, metrics.NewMock())
	s.Start()
	first := s.done

	// A second Start must not spawn a second loop; the running one stays.
	s.Start()
	assert.True(t, first == s.done, "second Start replaced the running loop")

	s.Stop()
	select {
	case <-first:
	default:
		t.Fatal("Stop returned before the loop exited")
	}
}

func TestSchedulerStopWithoutStart(t *testing.T) {
	s := NewScheduler(tickFunc(func() int { return 0 }), time.Second, metrics.NewMock())
	assert.NotPanics(t, func() { s.Stop() })
}

func TestSchedulerSurvivesPanickingTick(t *testing.T) {
	metricsMock := metrics.NewMock()
	var ticks atomic.Int64
	done := make(chan struct{})
	runner := tickFunc(func() int {
		n := ticks.Add(1)
		if n == 1 {
			panic("pairing exploded")
		}
		if n == 2 {
			close(done)
		}
		return 0
	})

	s := NewScheduler(runner, 5*time.Millisecond, metricsMock)
	s.Start()
	defer s.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not recover from the panicking tick")
	}
	assert.Equal(t, 1, metricsMock.TickErrors())
	assert.GreaterOrEqual(t, metricsMock.Ticks(), 2)
}
