package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receiveTimer(t *testing.T, msgs <-chan tea.Msg) *teaTimer {
	t.Helper()
	select {
	case msg := <-msgs:
		tm, ok := msg.(timerMsg)
		require.True(t, ok, "unexpected message %T", msg)
		return tm.timer
	case <-time.After(2 * time.Second):
		t.Fatal("timer message not delivered")
		return nil
	}
}

func TestTeaSchedulerAfterRunsOnFire(t *testing.T) {
	msgs := make(chan tea.Msg, 4)
	s := newTeaScheduler()
	s.attach(func(msg tea.Msg) { msgs <- msg })

	calls := 0
	s.After(time.Millisecond, func() { calls++ })
	timer := receiveTimer(t, msgs)
	assert.Zero(t, calls, "callbacks wait for the update loop")

	s.fire(timer)
	s.fire(timer)
	assert.Equal(t, 1, calls)
}

func TestTeaSchedulerEveryRearms(t *testing.T) {
	msgs := make(chan tea.Msg, 4)
	s := newTeaScheduler()
	s.attach(func(msg tea.Msg) { msgs <- msg })

	calls := 0
	handle := s.Every(time.Millisecond, func() { calls++ })
	s.fire(receiveTimer(t, msgs))
	s.fire(receiveTimer(t, msgs))
	assert.Equal(t, 2, calls)

	handle.Stop()
	s.fire(handle.(*teaTimer))
	assert.Equal(t, 2, calls)
}

func TestTeaSchedulerStoppedTimerDoesNotRun(t *testing.T) {
	msgs := make(chan tea.Msg, 1)
	s := newTeaScheduler()
	s.attach(func(msg tea.Msg) { msgs <- msg })

	called := false
	handle := s.After(time.Millisecond, func() { called = true })
	handle.Stop()
	s.fire(handle.(*teaTimer))
	assert.False(t, called)

	assert.True(t, s.Every(0, func() {}).(*teaTimer).stopped)
}
