package ui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/glide/internal/slider"
)

// timerMsg carries a due slider timer into the update loop.
type timerMsg struct {
	timer *teaTimer
}

type teaTimer struct {
	timer    *time.Timer
	interval time.Duration
	fn       func()
	stopped  bool
}

// Stop must be called from the update loop.
func (t *teaTimer) Stop() {
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
	}
}

// teaScheduler runs slider timers on the Bubble Tea update loop. Wall-clock
// timers only post a timerMsg; the callback itself runs inside Update, so the
// slider sees timers and input events on one goroutine.
type teaScheduler struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

var _ slider.Scheduler = (*teaScheduler)(nil)

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{}
}

// attach sets the function used to deliver timer messages, normally
// (*tea.Program).Send. Timers that fall due before attach are dropped.
func (s *teaScheduler) attach(send func(tea.Msg)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.send = send
}

func (s *teaScheduler) Now() time.Time { return time.Now() }

func (s *teaScheduler) After(d time.Duration, fn func()) slider.Timer {
	t := &teaTimer{fn: fn}
	s.arm(t, d)
	return t
}

func (s *teaScheduler) Every(d time.Duration, fn func()) slider.Timer {
	if d <= 0 {
		return &teaTimer{stopped: true}
	}
	t := &teaTimer{fn: fn, interval: d}
	s.arm(t, d)
	return t
}

func (s *teaScheduler) arm(t *teaTimer, d time.Duration) {
	if d < 0 {
		d = 0
	}
	t.timer = time.AfterFunc(d, func() { s.post(timerMsg{timer: t}) })
}

func (s *teaScheduler) post(msg tea.Msg) {
	s.mu.Lock()
	send := s.send
	s.mu.Unlock()
	if send != nil {
		send(msg)
	}
}

// fire runs a delivered timer. Repeating timers are re-armed before the
// callback so a callback that stops its own timer wins.
func (s *teaScheduler) fire(t *teaTimer) {
	if t.stopped {
		return
	}
	if t.interval > 0 {
		s.arm(t, t.interval)
	} else {
		t.stopped = true
	}
	t.fn()
}
