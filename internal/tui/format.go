package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/akyairhashvil/focusclock/internal/config"
)

var (
	errBadClock  = errors.New("use mm:ss or minutes")
	errLongClock = errors.New("sessions are limited to 24 hours")
)

// FormatClock renders seconds as mm:ss, or h:mm:ss from an hour up.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h, m, s := seconds/3600, (seconds/60)%60, seconds%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// ParseClock accepts "mm:ss" or a bare number of minutes.
func ParseClock(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, errBadClock
	}
	minPart, secPart, hasSec := strings.Cut(input, ":")
	minutes, err := strconv.Atoi(strings.TrimSpace(minPart))
	if err != nil || minutes < 0 {
		return 0, fmt.Errorf("%w: %q", errBadClock, input)
	}
	seconds := 0
	if hasSec {
		seconds, err = strconv.Atoi(strings.TrimSpace(secPart))
		if err != nil || seconds < 0 || seconds > 59 {
			return 0, fmt.Errorf("%w: %q", errBadClock, input)
		}
	}
	if minutes > config.MaxSessionSeconds/60 || minutes*60+seconds > config.MaxSessionSeconds {
		return 0, fmt.Errorf("%w: %q", errLongClock, input)
	}
	return minutes*60 + seconds, nil
}

// splitClock is the inverse of ParseClock for prefilling inputs.
func splitClock(minutes, seconds int) string {
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
