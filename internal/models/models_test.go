package models

import (
	"testing"
	"time"
)

func TestBuiltinPresetsAreUnique(t *testing.T) {
	seenIDs := map[string]bool{}
	for _, p := range BuiltinPresets {
		if p.DurationSeconds <= 0 {
			t.Fatalf("builtin %q has non-positive duration", p.ID)
		}
		if seenIDs[p.ID] {
			t.Fatalf("duplicate builtin id %q", p.ID)
		}
		seenIDs[p.ID] = true
	}
}

func TestSavedPresetSameSlot(t *testing.T) {
	p := SavedPreset{ID: "a", Title: "25:00", DurationSeconds: 1500}
	if !p.SameSlot(1500, false) {
		t.Fatalf("expected same slot for identical duration and kind")
	}
	if p.SameSlot(1500, true) {
		t.Fatalf("break flag must distinguish slots")
	}
	if p.SameSlot(1499, false) {
		t.Fatalf("duration must distinguish slots")
	}
	if got := p.Preset(); got.Duration() != 25*time.Minute || got.ID != "a" {
		t.Fatalf("unexpected conversion %+v", got)
	}
}

func TestPresetTitle(t *testing.T) {
	cases := map[int]string{1500: "25:00", 90: "01:30", 0: "00:00", -5: "00:00", 3600: "60:00"}
	for in, want := range cases {
		if got := PresetTitle(in); got != want {
			t.Fatalf("PresetTitle(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestDefaultCustomDuration(t *testing.T) {
	s := Settings{DefaultCustomMinutes: 2, DefaultCustomSeconds: 5}
	if got := s.DefaultCustomDuration(); got != 125 {
		t.Fatalf("expected 125, got %d", got)
	}
}
