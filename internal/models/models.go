package models

import (
	"fmt"
	"time"
)

// TimerPreset is a named, fixed duration shown alongside saved presets.
type TimerPreset struct {
	ID              string
	Title           string
	DurationSeconds int
	IsBreak         bool
}

// Duration returns the preset length as a time.Duration.
func (p TimerPreset) Duration() time.Duration {
	return time.Duration(p.DurationSeconds) * time.Second
}

// SavedPreset is a user-created preset. No two saved presets share the same
// (DurationSeconds, IsBreak) pair.
type SavedPreset struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	DurationSeconds int    `json:"durationSeconds"`
	IsBreak         bool   `json:"isBreak"`
}

// SameSlot reports whether p and other would be duplicates of each other.
func (p SavedPreset) SameSlot(durationSeconds int, isBreak bool) bool {
	return p.DurationSeconds == durationSeconds && p.IsBreak == isBreak
}

// Preset converts the saved entry into the display form.
func (p SavedPreset) Preset() TimerPreset {
	return TimerPreset{ID: p.ID, Title: p.Title, DurationSeconds: p.DurationSeconds, IsBreak: p.IsBreak}
}

// Settings holds the user-tunable flags. The zero value is not the default;
// use settings.Defaults.
type Settings struct {
	DefaultCustomMinutes int
	DefaultCustomSeconds int
	DefaultCustomIsBreak bool
	SoundEnabled         bool
	HapticsEnabled       bool
	NotificationsEnabled bool
}

// DefaultCustomDuration returns the custom duration in whole seconds.
func (s Settings) DefaultCustomDuration() int {
	return s.DefaultCustomMinutes*60 + s.DefaultCustomSeconds
}

// BuiltinPresets are never persisted and cannot be removed or reordered.
var BuiltinPresets = []TimerPreset{
	{ID: "builtin-focus-25", Title: "Focus", DurationSeconds: 25 * 60},
	{ID: "builtin-deep-50", Title: "Deep Work", DurationSeconds: 50 * 60},
	{ID: "builtin-break-5", Title: "Short Break", DurationSeconds: 5 * 60, IsBreak: true},
	{ID: "builtin-break-15", Title: "Long Break", DurationSeconds: 15 * 60, IsBreak: true},
}

// PresetTitle builds the default "mm:ss" title used when saving a session.
func PresetTitle(durationSeconds int) string {
	if durationSeconds < 0 {
		durationSeconds = 0
	}
	return fmt.Sprintf("%02d:%02d", durationSeconds/60, durationSeconds%60)
}
