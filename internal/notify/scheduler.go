// Package notify provides in-process adapters for the timer's notification
// and feedback ports.
package notify

import (
	"math"
	"sync"
	"time"
)

// maxAlertSeconds is the longest delay a time.Duration can hold.
const maxAlertSeconds = int(math.MaxInt64 / int64(time.Second))

// Alert is delivered when a scheduled completion comes due.
type Alert struct {
	IsBreak bool
}

// Message is the text shown for the alert.
func (a Alert) Message() string {
	if a.IsBreak {
		return "Break is over. Ready to focus?"
	}
	return "Focus session complete. Time for a break."
}

type Handler func(Alert)

type stopper interface {
	Stop() bool
}

// Scheduler keeps at most one pending completion alert. Alerts run on the
// timer goroutine, so handlers should only hand the alert off (for example
// to tea.Program.Send).
type Scheduler struct {
	mu        sync.Mutex
	handler   Handler
	pending   stopper
	gen       uint64
	afterFunc func(time.Duration, func()) stopper
}

func NewScheduler(handler Handler) *Scheduler {
	return &Scheduler{
		handler: handler,
		afterFunc: func(d time.Duration, f func()) stopper {
			return time.AfterFunc(d, f)
		},
	}
}

// SetHandler replaces the alert handler. Used when the receiver is built
// after the scheduler.
func (s *Scheduler) SetHandler(h Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handler = h
}

// ScheduleCompletion replaces any pending alert with one due afterSeconds
// from now.
func (s *Scheduler) ScheduleCompletion(afterSeconds int, isBreak bool) {
	if afterSeconds < 0 {
		afterSeconds = 0
	}
	if afterSeconds > maxAlertSeconds {
		afterSeconds = maxAlertSeconds
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.gen++
	gen := s.gen
	s.pending = s.afterFunc(time.Duration(afterSeconds)*time.Second, func() {
		s.fire(gen, isBreak)
	})
}

func (s *Scheduler) CancelScheduledCompletion() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.gen++
}

// Pending reports whether an alert is armed.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

func (s *Scheduler) stopLocked() {
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

// fire delivers the alert unless it was cancelled or replaced after the
// timer started running.
func (s *Scheduler) fire(gen uint64, isBreak bool) {
	s.mu.Lock()
	if gen != s.gen || s.pending == nil {
		s.mu.Unlock()
		return
	}
	s.pending = nil
	h := s.handler
	s.mu.Unlock()
	if h != nil {
		h(Alert{IsBreak: isBreak})
	}
}
