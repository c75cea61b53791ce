package config

import "time"

// Timer durations.
const (
	DefaultWorkDuration  = 25 * time.Minute
	DefaultBreakDuration = 5 * time.Minute
	MinSessionSeconds    = 1
	MaxSessionSeconds    = 24 * 60 * 60
	TickInterval         = time.Second
)

// Storage keys.
const (
	KeySavedPresets = "saved_presets"
	KeyTimerState   = "timer_state"
)

// Application settings.
const (
	AppName      = "focusclock"
	DBFileName   = "focusclock.db"
	LogFileName  = "focusclock.log"
	ConfigFile   = "config.yaml"
	DefaultTheme = "default"
)
