package timer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/akyairhashvil/focusclock/internal/config"
	"github.com/akyairhashvil/focusclock/internal/util"
)

// ErrDecodeFailure marks a stored snapshot that could not be parsed.
var ErrDecodeFailure = errors.New("decode timer snapshot")

// Snapshot is the persisted form of the engine state.
type Snapshot struct {
	TotalSeconds           int        `json:"totalSeconds"`
	RemainingSeconds       int        `json:"remainingSeconds"`
	IsRunning              bool       `json:"isRunning"`
	IsBreak                bool       `json:"isBreak"`
	AnchorTimestamp        *time.Time `json:"anchorTimestamp,omitempty"`
	PausedRemainingSeconds int        `json:"pausedRemainingSeconds"`
}

func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		TotalSeconds:           e.total,
		RemainingSeconds:       e.remaining,
		IsRunning:              e.running,
		IsBreak:                e.isBreak,
		PausedRemainingSeconds: e.pausedRemaining,
	}
	if e.running {
		anchor := e.anchor
		s.AnchorTimestamp = &anchor
	}
	return s
}

// Restore loads s, repairing inconsistent fields, and reconciles against now.
// A running session gets its completion alert re-armed; one that ran out
// while the app was away finishes on this call.
func (e *Engine) Restore(s Snapshot, now time.Time) Result {
	total := util.Clamp(s.TotalSeconds, config.MinSessionSeconds, config.MaxSessionSeconds)
	e.total = total
	e.isBreak = s.IsBreak
	e.remaining = util.Clamp(s.RemainingSeconds, 0, total)
	e.notifier.CancelScheduledCompletion()

	if !s.IsRunning || s.AnchorTimestamp == nil || s.AnchorTimestamp.IsZero() {
		e.running = false
		e.anchor = time.Time{}
		e.pausedRemaining = e.remaining
		e.finished = e.remaining == 0
		return Result{Remaining: e.remaining}
	}

	e.running = true
	e.finished = false
	e.anchor = *s.AnchorTimestamp
	e.pausedRemaining = util.Clamp(s.PausedRemainingSeconds, 0, total)
	res := e.Tick(now)
	if e.running && e.opts.Notifications {
		e.notifier.ScheduleCompletion(res.Remaining, e.isBreak)
	}
	return res
}

// SnapshotBackend is the key/value surface snapshots persist through.
type SnapshotBackend interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

type SnapshotStore struct {
	backend SnapshotBackend
}

func NewSnapshotStore(backend SnapshotBackend) *SnapshotStore {
	return &SnapshotStore{backend: backend}
}

func (s *SnapshotStore) Save(ctx context.Context, snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode timer snapshot: %w", err)
	}
	return s.backend.SetSetting(ctx, config.KeyTimerState, string(data))
}

// Load returns the stored snapshot. Missing or corrupt data reports false.
func (s *SnapshotStore) Load(ctx context.Context) (Snapshot, bool) {
	raw, ok := s.backend.GetSetting(ctx, config.KeyTimerState)
	if !ok || raw == "" {
		return Snapshot{}, false
	}
	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		util.LogError("load timer snapshot", fmt.Errorf("%w: %v", ErrDecodeFailure, err))
		return Snapshot{}, false
	}
	if snap.TotalSeconds <= 0 {
		util.LogError("load timer snapshot", fmt.Errorf("%w: total %d", ErrDecodeFailure, snap.TotalSeconds))
		return Snapshot{}, false
	}
	return snap, true
}
