package presets

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicatePreset is returned when a saved preset with the same
	// duration and kind already exists.
	ErrDuplicatePreset = errors.New("preset already exists")
	// ErrIndexOutOfRange is returned by Reorder for indices outside the list.
	ErrIndexOutOfRange = errors.New("preset index out of range")
	// ErrDecodeFailure marks stored preset data that could not be parsed. It
	// is logged and recovered from, never returned to callers.
	ErrDecodeFailure = errors.New("decode saved presets")
)

type PresetError struct {
	Op  string
	ID  string
	Err error
}

func (e *PresetError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID != "" {
		return fmt.Sprintf("%s preset %s: %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("%s preset: %v", e.Op, e.Err)
}

func (e *PresetError) Unwrap() error { return e.Err }
