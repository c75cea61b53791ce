// Package settings reads and writes the typed user settings. Each field is a
// separate key holding a JSON scalar; a key that is missing or cannot be
// coerced falls back to its default without affecting the others.
package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/akyairhashvil/focusclock/internal/config"
	"github.com/akyairhashvil/focusclock/internal/models"
	"github.com/akyairhashvil/focusclock/internal/util"
)

// Storage keys, named after the persisted fields.
const (
	KeyDefaultCustomMinutes = "defaultCustomMinutes"
	KeyDefaultCustomSeconds = "defaultCustomSeconds"
	KeyDefaultCustomIsBreak = "defaultCustomIsBreak"
	KeySoundEnabled         = "soundEnabled"
	KeyHapticsEnabled       = "hapticsEnabled"
	KeyNotificationsEnabled = "notificationsEnabled"
)

// Defaults is the documented default instance: a 25 minute work session with
// every feedback channel enabled.
func Defaults() models.Settings {
	return models.Settings{
		DefaultCustomMinutes: int(config.DefaultWorkDuration.Minutes()),
		DefaultCustomSeconds: 0,
		DefaultCustomIsBreak: false,
		SoundEnabled:         true,
		HapticsEnabled:       true,
		NotificationsEnabled: true,
	}
}

type Backend interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSettings(ctx context.Context, values map[string]string) error
}

type Store struct {
	backend Backend
}

func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Load never fails; unreadable keys take their default.
func (s *Store) Load(ctx context.Context) models.Settings {
	out := Defaults()
	s.readInt(ctx, KeyDefaultCustomMinutes, &out.DefaultCustomMinutes)
	s.readInt(ctx, KeyDefaultCustomSeconds, &out.DefaultCustomSeconds)
	s.readBool(ctx, KeyDefaultCustomIsBreak, &out.DefaultCustomIsBreak)
	s.readBool(ctx, KeySoundEnabled, &out.SoundEnabled)
	s.readBool(ctx, KeyHapticsEnabled, &out.HapticsEnabled)
	s.readBool(ctx, KeyNotificationsEnabled, &out.NotificationsEnabled)
	return out
}

func (s *Store) Save(ctx context.Context, v models.Settings) error {
	values := map[string]string{
		KeyDefaultCustomMinutes: strconv.Itoa(v.DefaultCustomMinutes),
		KeyDefaultCustomSeconds: strconv.Itoa(v.DefaultCustomSeconds),
		KeyDefaultCustomIsBreak: strconv.FormatBool(v.DefaultCustomIsBreak),
		KeySoundEnabled:         strconv.FormatBool(v.SoundEnabled),
		KeyHapticsEnabled:       strconv.FormatBool(v.HapticsEnabled),
		KeyNotificationsEnabled: strconv.FormatBool(v.NotificationsEnabled),
	}
	if err := s.backend.SetSettings(ctx, values); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Update loads, applies fn and saves, returning the saved value.
func (s *Store) Update(ctx context.Context, fn func(*models.Settings)) (models.Settings, error) {
	v := s.Load(ctx)
	fn(&v)
	if err := s.Save(ctx, v); err != nil {
		return s.Load(ctx), err
	}
	return v, nil
}

func (s *Store) readInt(ctx context.Context, key string, dst *int) {
	raw, ok := s.backend.GetSetting(ctx, key)
	if !ok {
		return
	}
	v, err := coerceInt(raw)
	if err != nil {
		util.LogError("settings "+key, err)
		return
	}
	*dst = v
}

func (s *Store) readBool(ctx context.Context, key string, dst *bool) {
	raw, ok := s.backend.GetSetting(ctx, key)
	if !ok {
		return
	}
	v, err := coerceBool(raw)
	if err != nil {
		util.LogError("settings "+key, err)
		return
	}
	*dst = v
}

// unquote strips one level of JSON string quoting, so `"25"` and `25` read
// the same.
func unquote(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) >= 2 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal([]byte(raw), &s); err == nil {
			return strings.TrimSpace(s)
		}
	}
	return raw
}

func coerceInt(raw string) (int, error) {
	v := unquote(raw)
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	// NaN fails both comparisons.
	if !(f >= math.MinInt32 && f <= math.MaxInt32) {
		return 0, fmt.Errorf("out of range: %q", raw)
	}
	return int(f), nil
}

func coerceBool(raw string) (bool, error) {
	v := unquote(raw)
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("not a boolean: %q", raw)
	}
	return b, nil
}
