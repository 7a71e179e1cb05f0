package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Scope ties delayed work to the page that started it. Cancelling the scope
// (leaving the page) stops pending timers, and anything that still gets
// through is dropped because its scope id no longer matches.
type Scope struct {
	id     uint64
	ctx    context.Context
	cancel context.CancelFunc
}

// scopedMsg wraps a message delivered by Scope.After.
type scopedMsg struct {
	scope uint64
	msg   tea.Msg
}

func newScope(parent context.Context, id uint64) *Scope {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	return &Scope{id: id, ctx: ctx, cancel: cancel}
}

// ID identifies the scope in delivered messages.
func (s *Scope) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}

// Cancel stops every timer started from this scope.
func (s *Scope) Cancel() {
	if s != nil && s.cancel != nil {
		s.cancel()
	}
}

// Alive reports whether the scope has not been cancelled.
func (s *Scope) Alive() bool {
	return s != nil && s.ctx.Err() == nil
}

// After returns a command that delivers msg once d has elapsed. If the scope
// is cancelled first the command yields nil, which bubbletea ignores.
func (s *Scope) After(d time.Duration, msg tea.Msg) tea.Cmd {
	if s == nil {
		return nil
	}
	ctx, id := s.ctx, s.id
	return func() tea.Msg {
		if !wait(ctx, d) {
			return nil
		}
		return scopedMsg{scope: id, msg: msg}
	}
}

// wait blocks for d and reports whether it elapsed before ctx ended.
// Tests replace it to observe scheduled delays.
var wait = func(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
