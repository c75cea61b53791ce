package notify

import (
	"io"
	"sync"

	"github.com/akyairhashvil/focusclock/internal/util"
)

const bell = "\a"

// Terminal rings the terminal bell for sounds. Terminals have no haptics, so
// those cues are only logged.
type Terminal struct {
	mu  sync.Mutex
	out io.Writer
}

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

func (t *Terminal) PlayCompletionSound() {
	if t.out == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := io.WriteString(t.out, bell)
	util.LogError("play completion sound", err)
}

func (t *Terminal) TriggerSuccessHaptic() {
	util.Debugf("haptic: success")
}

func (t *Terminal) TriggerLightHaptic() {
	util.Debugf("haptic: light")
}
