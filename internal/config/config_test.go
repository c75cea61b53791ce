package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(filepath.Join(dir, "nope.yaml"), dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TickInterval != TickInterval {
		t.Fatalf("expected default tick interval, got %v", cfg.TickInterval)
	}
	if cfg.DBPath() != filepath.Join(dir, DBFileName) {
		t.Fatalf("unexpected db path %q", cfg.DBPath())
	}
	if cfg.BreakSeconds() != 300 {
		t.Fatalf("expected 300 break seconds, got %d", cfg.BreakSeconds())
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("", "/data")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != "/data" {
		t.Fatalf("expected data dir /data, got %q", cfg.DataDir)
	}
}

func TestLoadOverridesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFile)
	body := "db_file: /tmp/other.db\ntick_interval: 250ms\nbreak_minutes: 0\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}
	cfg, err := Load(path, dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DBPath() != "/tmp/other.db" {
		t.Fatalf("expected absolute db path to be kept, got %q", cfg.DBPath())
	}
	if cfg.TickInterval != 250*time.Millisecond {
		t.Fatalf("expected 250ms tick, got %v", cfg.TickInterval)
	}
	if cfg.BreakMinutes != 5 {
		t.Fatalf("expected break minutes to fall back to 5, got %d", cfg.BreakMinutes)
	}
	if cfg.LogPath() != filepath.Join(dir, LogFileName) {
		t.Fatalf("unexpected log path %q", cfg.LogPath())
	}
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFile)
	if err := os.WriteFile(path, []byte("tick_interval: [nope"), 0o644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}
	if _, err := Load(path, dir); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", ConfigFile)
	cfg := DefaultConfig(dir)
	cfg.BreakMinutes = 10
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path, dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.BreakMinutes != 10 {
		t.Fatalf("expected 10 break minutes, got %d", loaded.BreakMinutes)
	}
}

func TestLoadThemeAndHomeExpansion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFile)
	if err := os.WriteFile(path, []byte("data_dir: ~/clock\ntheme: dracula\n"), 0o644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}
	cfg, err := Load(path, dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != filepath.Join(home, "clock") {
		t.Fatalf("expected expanded data dir, got %q", cfg.DataDir)
	}
	if cfg.Theme != "dracula" {
		t.Fatalf("expected dracula theme, got %q", cfg.Theme)
	}
	if DefaultConfig(dir).Theme != DefaultTheme {
		t.Fatalf("expected default theme in defaults")
	}
}
