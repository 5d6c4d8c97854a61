package core

import "time"

// Scheduler owns at most one repeating interval and one pending timeout. It
// never runs anything on its own: the owner calls Advance from its main loop
// with the current time, so all callbacks run on the caller's goroutine.
type Scheduler struct {
	interval *interval
	timeout  *timeout
}

type interval struct {
	period time.Duration
	next   time.Time
	fn     func(at time.Time)
}

type timeout struct {
	due time.Time
	fn  func(at time.Time)
}

// Every arms the interval to call fn each period, starting one period after
// now. Any interval already armed is stopped first.
func (s *Scheduler) Every(now time.Time, period time.Duration, fn func(at time.Time)) {
	s.StopInterval()
	if period <= 0 || fn == nil {
		return
	}
	s.interval = &interval{period: period, next: now.Add(period), fn: fn}
}

// After arms the timeout to call fn once delay has elapsed from now. Any
// timeout already pending is cancelled first. Callbacks may call After again
// to build a chain of one-shot delays.
func (s *Scheduler) After(now time.Time, delay time.Duration, fn func(at time.Time)) {
	s.StopTimeout()
	if fn == nil {
		return
	}
	if delay < 0 {
		delay = 0
	}
	s.timeout = &timeout{due: now.Add(delay), fn: fn}
}

// StopInterval cancels the repeating interval, if any.
func (s *Scheduler) StopInterval() { s.interval = nil }

// StopTimeout cancels the pending timeout, if any.
func (s *Scheduler) StopTimeout() { s.timeout = nil }

// Stop cancels everything the scheduler owns.
func (s *Scheduler) Stop() {
	s.StopInterval()
	s.StopTimeout()
}

// Active reports how many intervals and timeouts are currently armed.
func (s *Scheduler) Active() (intervals, timeouts int) {
	if s.interval != nil {
		intervals = 1
	}
	if s.timeout != nil {
		timeouts = 1
	}
	return intervals, timeouts
}

// Advance fires every callback due at or before now, earliest first. Each
// callback receives its scheduled time rather than now so chained delays keep
// their pacing when the caller polls coarsely. An interval that fell more than
// one period behind skips the missed ticks. Advance returns the number of
// callbacks fired.
func (s *Scheduler) Advance(now time.Time) int {
	fired := 0
	for {
		iv, to := s.interval, s.timeout
		ivDue := iv != nil && !iv.next.After(now)
		toDue := to != nil && !to.due.After(now)

		switch {
		case ivDue && (!toDue || !to.due.Before(iv.next)):
			at := iv.next
			iv.next = at.Add(iv.period)
			if now.Sub(iv.next) >= iv.period {
				iv.next = now.Add(iv.period)
			}
			iv.fn(at)
		case toDue:
			s.timeout = nil
			to.fn(to.due)
		default:
			return fired
		}
		fired++
	}
}
