// Package timer implements the countdown state machine.
//
// Remaining time is never accumulated tick by tick. While a session runs the
// engine keeps the wall-clock instant it resumed (the anchor) and the seconds
// left at that instant, and derives remaining time from those two values and
// the current time. Reconciling after an arbitrary suspension therefore needs
// no special handling.
package timer

import (
	"time"

	"github.com/akyairhashvil/focusclock/internal/config"
	"github.com/akyairhashvil/focusclock/internal/util"
)

// Phase is the coarse engine state.
type Phase int

const (
	PhaseIdle Phase = iota // idle or paused
	PhaseRunning
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseFinished:
		return "finished"
	default:
		return "idle"
	}
}

// Options mirrors the feedback flags from user settings.
type Options struct {
	Sound         bool
	Haptics       bool
	Notifications bool
}

// Result reports the outcome of a reconcile.
type Result struct {
	Remaining int
	// Finished is true only on the call that observed the session reach zero.
	Finished bool
	// OfferBreak asks the host to propose a break; set when a work session
	// finishes.
	OfferBreak bool
}

type Engine struct {
	total           int
	remaining       int
	pausedRemaining int
	isBreak         bool
	running         bool
	finished        bool
	anchor          time.Time

	notifier Notifier
	feedback Feedback
	opts     Options
	now      func() time.Time
}

type Option func(*Engine)

// WithClock replaces time.Now for Start and Pause.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithOptions sets the initial feedback flags.
func WithOptions(opts Options) Option {
	return func(e *Engine) { e.opts = opts }
}

// New returns an idle engine loaded with durationSeconds. Nil ports are
// replaced with no-ops.
func New(durationSeconds int, isBreak bool, notifier Notifier, feedback Feedback, opts ...Option) *Engine {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	if feedback == nil {
		feedback = NopFeedback{}
	}
	e := &Engine{
		notifier: notifier,
		feedback: feedback,
		opts:     Options{Sound: true, Haptics: true, Notifications: true},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.load(durationSeconds, isBreak)
	return e
}

// RemainingAt is the reconcile formula: max(0, paused - whole seconds since
// anchor). Time running backwards counts as no time at all.
func RemainingAt(anchor time.Time, pausedRemaining int, now time.Time) int {
	elapsed := now.Sub(anchor)
	if elapsed < 0 {
		elapsed = 0
	}
	remaining := pausedRemaining - int(elapsed/time.Second)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (e *Engine) load(durationSeconds int, isBreak bool) {
	d := util.Clamp(durationSeconds, config.MinSessionSeconds, config.MaxSessionSeconds)
	e.total = d
	e.remaining = d
	e.pausedRemaining = d
	e.isBreak = isBreak
	e.running = false
	e.finished = false
	e.anchor = time.Time{}
}

// SetSession replaces the current session with a fresh one of the given
// length and kind. Durations are clamped to [1s, 24h].
func (e *Engine) SetSession(durationSeconds int, isBreak bool) {
	e.load(durationSeconds, isBreak)
	e.notifier.CancelScheduledCompletion()
}

// Start begins or resumes the countdown. A finished session is reset first;
// a running one is left alone.
func (e *Engine) Start() {
	if e.running {
		return
	}
	if e.remaining == 0 {
		e.Reset()
	}
	e.anchor = e.now()
	e.pausedRemaining = e.remaining
	e.running = true
	e.finished = false
	if e.opts.Notifications {
		e.notifier.ScheduleCompletion(e.remaining, e.isBreak)
	}
	if e.opts.Haptics {
		e.feedback.TriggerLightHaptic()
	}
}

// Pause freezes the countdown. If the session already ran out, Pause finishes
// it instead and reports that through the Result.
func (e *Engine) Pause() Result {
	if !e.running {
		return Result{Remaining: e.remaining}
	}
	remaining := RemainingAt(e.anchor, e.pausedRemaining, e.now())
	if remaining == 0 {
		e.remaining = 0
		return e.finish()
	}
	e.remaining = remaining
	e.pausedRemaining = remaining
	e.anchor = time.Time{}
	e.running = false
	e.notifier.CancelScheduledCompletion()
	if e.opts.Haptics {
		e.feedback.TriggerLightHaptic()
	}
	return Result{Remaining: remaining}
}

// Toggle starts a stopped engine and pauses a running one.
func (e *Engine) Toggle() Result {
	if e.running {
		return e.Pause()
	}
	e.Start()
	return Result{Remaining: e.remaining}
}

// Reset restores the full session length without starting it.
func (e *Engine) Reset() {
	e.load(e.total, e.isBreak)
	e.notifier.CancelScheduledCompletion()
}

// Tick recomputes remaining time for now. It may be called at any cadence and
// repeatedly with the same instant.
func (e *Engine) Tick(now time.Time) Result {
	if !e.running {
		return Result{Remaining: e.remaining}
	}
	e.remaining = RemainingAt(e.anchor, e.pausedRemaining, now)
	if e.remaining > 0 {
		return Result{Remaining: e.remaining}
	}
	return e.finish()
}

// Reconcile is Tick under the name used for resume-from-background.
func (e *Engine) Reconcile(now time.Time) Result {
	return e.Tick(now)
}

func (e *Engine) finish() Result {
	e.running = false
	e.finished = true
	e.anchor = time.Time{}
	e.pausedRemaining = 0
	if e.opts.Sound {
		e.feedback.PlayCompletionSound()
	}
	if e.opts.Haptics {
		e.feedback.TriggerSuccessHaptic()
	}
	return Result{Remaining: 0, Finished: true, OfferBreak: !e.isBreak}
}

// SetOptions updates the feedback flags. Toggling notifications while a
// session runs arms or cancels its pending alert.
func (e *Engine) SetOptions(opts Options) {
	prev := e.opts
	e.opts = opts
	if !e.running || prev.Notifications == opts.Notifications {
		return
	}
	if !opts.Notifications {
		e.notifier.CancelScheduledCompletion()
		return
	}
	remaining := RemainingAt(e.anchor, e.pausedRemaining, e.now())
	if remaining > 0 {
		e.notifier.ScheduleCompletion(remaining, e.isBreak)
	}
}

func (e *Engine) Options() Options { return e.opts }

func (e *Engine) Total() int           { return e.total }
func (e *Engine) Remaining() int       { return e.remaining }
func (e *Engine) PausedRemaining() int { return e.pausedRemaining }
func (e *Engine) IsRunning() bool      { return e.running }
func (e *Engine) IsBreak() bool        { return e.isBreak }

// Anchor returns the instant the running interval began; ok is false while
// the engine is stopped.
func (e *Engine) Anchor() (time.Time, bool) {
	return e.anchor, e.running
}

func (e *Engine) Phase() Phase {
	switch {
	case e.running:
		return PhaseRunning
	case e.finished:
		return PhaseFinished
	default:
		return PhaseIdle
	}
}

// Paused reports a stopped session that has been partially consumed.
func (e *Engine) Paused() bool {
	return !e.running && !e.finished && e.remaining < e.total
}

// Progress is the consumed fraction of the session in [0, 1].
func (e *Engine) Progress() float64 {
	if e.total <= 0 {
		return 0
	}
	return float64(e.total-e.remaining) / float64(e.total)
}
