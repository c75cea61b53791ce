package database

import (
	"context"
	"database/sql"
	"errors"
)

// GetSetting returns the stored value for key. A missing row, a NULL value or
// a read error all report ok == false.
func (d *Database) GetSetting(ctx context.Context, key string) (string, bool) {
	value, err := d.LookupSetting(ctx, key)
	if err != nil {
		return "", false
	}
	return value, true
}

// LookupSetting is GetSetting with the failure reason preserved.
func (d *Database) LookupSetting(ctx context.Context, key string) (string, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var value sql.NullString
	err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", wrapSettingErr("get", key, ErrSettingNotFound)
	}
	if err != nil {
		return "", wrapSettingErr("get", key, err)
	}
	if !value.Valid {
		return "", wrapSettingErr("get", key, ErrSettingNotFound)
	}
	return value.String, nil
}

func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	_, err := d.DB.ExecContext(ctx, upsertSettingSQL, key, value)
	return wrapSettingErr("set", key, err)
}

// SetSettings writes all pairs in one transaction.
func (d *Database) SetSettings(ctx context.Context, values map[string]string) error {
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, upsertSettingSQL)
		if err != nil {
			return wrapSettingErr("prepare", "", err)
		}
		defer stmt.Close()
		for key, value := range values {
			if _, err := stmt.ExecContext(ctx, key, value); err != nil {
				return wrapSettingErr("set", key, err)
			}
		}
		return nil
	})
}

func (d *Database) DeleteSetting(ctx context.Context, key string) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	_, err := d.DB.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key)
	return wrapSettingErr("delete", key, err)
}

const upsertSettingSQL = "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value"
