// Package presets keeps the ordered list of user-saved presets and mirrors
// every change to storage before returning.
package presets

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/akyairhashvil/focusclock/internal/config"
	"github.com/akyairhashvil/focusclock/internal/models"
	"github.com/akyairhashvil/focusclock/internal/util"
	"github.com/google/uuid"
)

// Backend is the key/value surface the store persists through.
type Backend interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

type Store struct {
	backend Backend
	items   []models.SavedPreset
	newID   func() string
}

// NewStore returns an empty store; call Load to read persisted presets.
func NewStore(backend Backend) *Store {
	return &Store{backend: backend, newID: uuid.NewString}
}

// Load replaces the in-memory list with the persisted one. Missing or
// malformed data yields an empty list.
func (s *Store) Load(ctx context.Context) []models.SavedPreset {
	s.items = s.decode(ctx)
	return s.List()
}

func (s *Store) decode(ctx context.Context) []models.SavedPreset {
	raw, ok := s.backend.GetSetting(ctx, config.KeySavedPresets)
	if !ok || raw == "" {
		return nil
	}
	var items []models.SavedPreset
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		util.LogError("load presets", &PresetError{Op: "load", Err: fmt.Errorf("%w: %v", ErrDecodeFailure, err)})
		return nil
	}
	return dedupe(items)
}

// dedupe keeps the first preset for each (duration, kind) slot.
func dedupe(items []models.SavedPreset) []models.SavedPreset {
	out := items[:0]
	for _, p := range items {
		dup := false
		for _, kept := range out {
			if kept.SameSlot(p.DurationSeconds, p.IsBreak) {
				util.LogError("load presets", &PresetError{Op: "load", ID: p.ID, Err: fmt.Errorf("%w: duplicate of %s", ErrDecodeFailure, kept.ID)})
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

// Persist writes the current list.
func (s *Store) Persist(ctx context.Context) error {
	items := s.items
	if items == nil {
		items = []models.SavedPreset{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return &PresetError{Op: "encode", Err: err}
	}
	if err := s.backend.SetSetting(ctx, config.KeySavedPresets, string(data)); err != nil {
		return &PresetError{Op: "persist", Err: err}
	}
	return nil
}

// commit persists next as the new list, keeping the old one on failure.
func (s *Store) commit(ctx context.Context, next []models.SavedPreset) error {
	prev := s.items
	s.items = next
	if err := s.Persist(ctx); err != nil {
		s.items = prev
		return err
	}
	return nil
}

// Add appends a preset unless one with the same duration and kind exists.
// Durations are stored as given; the engine clamps them when a session starts.
func (s *Store) Add(ctx context.Context, title string, durationSeconds int, isBreak bool) (models.SavedPreset, error) {
	for _, p := range s.items {
		if p.SameSlot(durationSeconds, isBreak) {
			return models.SavedPreset{}, &PresetError{Op: "add", ID: p.ID, Err: ErrDuplicatePreset}
		}
	}
	p := models.SavedPreset{
		ID:              s.newID(),
		Title:           title,
		DurationSeconds: durationSeconds,
		IsBreak:         isBreak,
	}
	next := append(s.List(), p)
	if err := s.commit(ctx, next); err != nil {
		return models.SavedPreset{}, err
	}
	return p, nil
}

// Remove deletes the preset with id. Unknown ids are not an error.
func (s *Store) Remove(ctx context.Context, id string) error {
	next := make([]models.SavedPreset, 0, len(s.items))
	for _, p := range s.items {
		if p.ID != id {
			next = append(next, p)
		}
	}
	return s.commit(ctx, next)
}

// Reorder moves the entry at from to position to, keeping the relative order
// of every other entry.
func (s *Store) Reorder(ctx context.Context, from, to int) error {
	n := len(s.items)
	if from < 0 || from >= n || to < 0 || to >= n {
		return &PresetError{Op: "reorder", Err: fmt.Errorf("%w: from=%d to=%d len=%d", ErrIndexOutOfRange, from, to, n)}
	}
	if from == to {
		return s.commit(ctx, s.List())
	}
	moved := s.items[from]
	next := make([]models.SavedPreset, 0, n)
	for i, p := range s.items {
		if i != from {
			next = append(next, p)
		}
	}
	next = slices.Insert(next, to, moved)
	return s.commit(ctx, next)
}

func (s *Store) Clear(ctx context.Context) error {
	return s.commit(ctx, nil)
}

// List returns a copy of the ordered presets.
func (s *Store) List() []models.SavedPreset {
	out := make([]models.SavedPreset, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int { return len(s.items) }

func (s *Store) Find(id string) (models.SavedPreset, int, bool) {
	for i, p := range s.items {
		if p.ID == id {
			return p, i, true
		}
	}
	return models.SavedPreset{}, -1, false
}
