package database

import "context"

// SettingsRepository is the key/value surface the stores persist through.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
	SetSettings(ctx context.Context, values map[string]string) error
	DeleteSetting(ctx context.Context, key string) error
}

var _ SettingsRepository = (*Database)(nil)
