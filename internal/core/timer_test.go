package core

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestSchedulerIntervalFires(t *testing.T) {
	clock := NewManualClock(epoch)
	var s Scheduler
	count := 0
	s.Every(clock.Now(), 50*time.Millisecond, func(time.Time) { count++ })

	for i := 0; i < 10; i++ {
		s.Advance(clock.Advance(50 * time.Millisecond))
	}
	if count != 10 {
		t.Fatalf("interval fired %d times, expected 10", count)
	}

	s.StopInterval()
	s.Advance(clock.Advance(time.Second))
	if count != 10 {
		t.Fatalf("stopped interval kept firing: %d", count)
	}
}

func TestSchedulerEveryReplacesInterval(t *testing.T) {
	clock := NewManualClock(epoch)
	var s Scheduler
	first, second := 0, 0
	s.Every(clock.Now(), 50*time.Millisecond, func(time.Time) { first++ })
	s.Every(clock.Now(), 50*time.Millisecond, func(time.Time) { second++ })

	if iv, _ := s.Active(); iv != 1 {
		t.Fatalf("active intervals = %d, expected 1", iv)
	}
	s.Advance(clock.Advance(50 * time.Millisecond))
	if first != 0 || second != 1 {
		t.Fatalf("first=%d second=%d, expected 0 and 1", first, second)
	}
}

func TestSchedulerTimeoutChainKeepsPacing(t *testing.T) {
	clock := NewManualClock(epoch)
	var s Scheduler
	var fired []time.Time
	var step func(at time.Time)
	step = func(at time.Time) {
		fired = append(fired, at)
		if len(fired) < 5 {
			s.After(at, 10*time.Millisecond, step)
		}
	}
	s.After(clock.Now(), 10*time.Millisecond, step)

	// A single coarse poll must still run the whole chain on schedule.
	n := s.Advance(clock.Advance(100 * time.Millisecond))
	if n != 5 || len(fired) != 5 {
		t.Fatalf("fired %d callbacks, expected 5", len(fired))
	}
	for i, at := range fired {
		want := epoch.Add(time.Duration(i+1) * 10 * time.Millisecond)
		if !at.Equal(want) {
			t.Fatalf("step %d ran at %v, expected %v", i, at.Sub(epoch), want.Sub(epoch))
		}
	}
	if _, to := s.Active(); to != 0 {
		t.Fatalf("timeout still armed after chain finished")
	}
}

func TestSchedulerOrdersByDueTime(t *testing.T) {
	clock := NewManualClock(epoch)
	var s Scheduler
	var order []string
	s.Every(clock.Now(), 20*time.Millisecond, func(time.Time) { order = append(order, "tick") })
	s.After(clock.Now(), 30*time.Millisecond, func(time.Time) { order = append(order, "timeout") })

	s.Advance(clock.Advance(40 * time.Millisecond))
	want := []string{"tick", "timeout", "tick"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, expected %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, expected %v", order, want)
		}
	}
}

func TestSchedulerSkipsMissedTicks(t *testing.T) {
	clock := NewManualClock(epoch)
	var s Scheduler
	count := 0
	s.Every(clock.Now(), 50*time.Millisecond, func(time.Time) { count++ })
	s.Advance(clock.Advance(10 * time.Second))
	if count != 1 {
		t.Fatalf("lagging interval fired %d times, expected 1", count)
	}
}

func TestSchedulerStop(t *testing.T) {
	clock := NewManualClock(epoch)
	var s Scheduler
	s.Every(clock.Now(), time.Millisecond, func(time.Time) { t.Fatal("interval fired after Stop") })
	s.After(clock.Now(), time.Millisecond, func(time.Time) { t.Fatal("timeout fired after Stop") })
	s.Stop()
	if iv, to := s.Active(); iv != 0 || to != 0 {
		t.Fatalf("active = %d/%d after Stop", iv, to)
	}
	s.Advance(clock.Advance(time.Second))
}
