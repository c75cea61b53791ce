// Package util provides common utilities including logging helpers,
// file system paths and small numeric helpers.
package util

import (
	"log"
	"sync/atomic"
)

var debugEnabled atomic.Bool

// SetDebug toggles Debugf output.
func SetDebug(enabled bool) {
	debugEnabled.Store(enabled)
}

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// Debugf logs only when debug output is enabled.
func Debugf(format string, v ...any) {
	if debugEnabled.Load() {
		log.Printf("debug: "+format, v...)
	}
}
