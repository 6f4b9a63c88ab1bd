package slider

import (
	"sort"
	"time"
)

// Timer is a cancellable pending invocation.
type Timer interface {
	Stop()
}

// Scheduler is the host timer service. Callbacks must run on the same event
// loop that delivers host events; the slider does no locking of its own.
type Scheduler interface {
	Now() time.Time
	After(d time.Duration, fn func()) Timer
	Every(d time.Duration, fn func()) Timer
}

// ManualScheduler is a deterministic Scheduler whose clock only moves when
// Advance is called. Headless hosts and tests drive timers with it.
type ManualScheduler struct {
	now    time.Time
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	s        *ManualScheduler
	seq      int
	due      time.Time
	interval time.Duration
	fn       func()
	stopped  bool
}

func (t *manualTimer) Stop() {
	t.stopped = true
	t.s.remove(t)
}

// NewManualScheduler returns a scheduler whose clock starts at start.
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

// Now returns the scheduler's current time.
func (s *ManualScheduler) Now() time.Time { return s.now }

// After schedules fn once, d from now.
func (s *ManualScheduler) After(d time.Duration, fn func()) Timer {
	return s.add(d, 0, fn)
}

// Every schedules fn every d. Non-positive intervals never fire.
func (s *ManualScheduler) Every(d time.Duration, fn func()) Timer {
	if d <= 0 {
		return &manualTimer{s: s, stopped: true}
	}
	return s.add(d, d, fn)
}

// Pending returns the number of armed timers.
func (s *ManualScheduler) Pending() int { return len(s.timers) }

// Advance moves the clock forward by d, firing due timers in order. Timers
// armed by callbacks fire within the same call when they fall due.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.now.Add(d)
	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.now = next.due
		if next.interval > 0 {
			next.due = next.due.Add(next.interval)
		} else {
			s.remove(next)
		}
		next.fn()
	}
	s.now = target
}

func (s *ManualScheduler) add(d, interval time.Duration, fn func()) *manualTimer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &manualTimer{s: s, seq: s.seq, due: s.now.Add(d), interval: interval, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

func (s *ManualScheduler) nextDue(limit time.Time) *manualTimer {
	if len(s.timers) == 0 {
		return nil
	}
	sort.SliceStable(s.timers, func(i, j int) bool {
		if s.timers[i].due.Equal(s.timers[j].due) {
			return s.timers[i].seq < s.timers[j].seq
		}
		return s.timers[i].due.Before(s.timers[j].due)
	})
	if s.timers[0].due.After(limit) {
		return nil
	}
	return s.timers[0]
}

func (s *ManualScheduler) remove(t *manualTimer) {
	for i, cur := range s.timers {
		if cur == t {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}
