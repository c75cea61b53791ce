package testutil

import (
	"encoding/json"

	"github.com/akyairhashvil/focusclock/internal/models"
)

// PresetBuilder provides a fluent API for creating saved presets in tests.
type PresetBuilder struct {
	preset models.SavedPreset
}

func NewPreset() *PresetBuilder {
	return &PresetBuilder{
		preset: models.SavedPreset{
			ID:              "test-preset",
			Title:           "25:00",
			DurationSeconds: 1500,
		},
	}
}

func (b *PresetBuilder) WithID(id string) *PresetBuilder {
	b.preset.ID = id
	return b
}

func (b *PresetBuilder) WithTitle(title string) *PresetBuilder {
	b.preset.Title = title
	return b
}

// WithDuration sets the length and retitles the preset to match, unless a
// title was set explicitly afterwards.
func (b *PresetBuilder) WithDuration(seconds int) *PresetBuilder {
	b.preset.DurationSeconds = seconds
	b.preset.Title = models.PresetTitle(seconds)
	return b
}

func (b *PresetBuilder) AsBreak() *PresetBuilder {
	b.preset.IsBreak = true
	return b
}

func (b *PresetBuilder) Build() models.SavedPreset {
	return b.preset
}

// PresetsJSON encodes presets the way they are stored under the saved
// presets key.
func PresetsJSON(presets ...models.SavedPreset) string {
	if presets == nil {
		presets = []models.SavedPreset{}
	}
	data, err := json.Marshal(presets)
	if err != nil {
		panic(err)
	}
	return string(data)
}
