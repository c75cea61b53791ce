package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/focusclock/internal/util"
	"gopkg.in/yaml.v3"
)

// Config is the optional on-disk launcher configuration. User settings that
// change at runtime live in the database, not here.
type Config struct {
	DataDir      string        `yaml:"data_dir"`
	DBFile       string        `yaml:"db_file"`
	LogFile      string        `yaml:"log_file"`
	TickInterval time.Duration `yaml:"tick_interval"`
	BreakMinutes int           `yaml:"break_minutes"`
	Theme        string        `yaml:"theme"`
}

func DefaultConfig(dataDir string) *Config {
	return &Config{
		DataDir:      dataDir,
		DBFile:       DBFileName,
		LogFile:      LogFileName,
		TickInterval: TickInterval,
		BreakMinutes: int(DefaultBreakDuration / time.Minute),
		Theme:        DefaultTheme,
	}
}

// Load reads the YAML file at path over the defaults. A missing file is not
// an error.
func Load(path, dataDir string) (*Config, error) {
	cfg := DefaultConfig(dataDir)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.normalize(dataDir)
	return cfg, nil
}

func (c *Config) normalize(dataDir string) {
	if c.DataDir == "" {
		c.DataDir = dataDir
	}
	c.DataDir = util.ExpandHome(c.DataDir)
	if c.DBFile == "" {
		c.DBFile = DBFileName
	}
	if c.LogFile == "" {
		c.LogFile = LogFileName
	}
	if c.TickInterval <= 0 {
		c.TickInterval = TickInterval
	}
	if c.BreakMinutes <= 0 {
		c.BreakMinutes = int(DefaultBreakDuration / time.Minute)
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
}

// DBPath resolves the database file against the data directory.
func (c *Config) DBPath() string {
	return c.resolve(c.DBFile)
}

// LogPath resolves the log file against the data directory.
func (c *Config) LogPath() string {
	return c.resolve(c.LogFile)
}

// BreakSeconds is the length of the break offered after a work session.
func (c *Config) BreakSeconds() int {
	return c.BreakMinutes * 60
}

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
