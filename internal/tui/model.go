package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/focusclock/internal/config"
	"github.com/akyairhashvil/focusclock/internal/models"
	"github.com/akyairhashvil/focusclock/internal/notify"
	"github.com/akyairhashvil/focusclock/internal/presets"
	"github.com/akyairhashvil/focusclock/internal/settings"
	"github.com/akyairhashvil/focusclock/internal/timer"
	"github.com/akyairhashvil/focusclock/internal/util"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives reconciliation; the payload is the wall-clock instant.
type TickMsg time.Time

// AlertMsg carries a scheduled completion alert into the update loop.
type AlertMsg notify.Alert

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

type inputMode int

const (
	modeNormal inputMode = iota
	modeCustom
	modeSaveTitle
	modeBreakOffer
)

// Deps wires the model to the core. Engine, Presets, Settings and Snapshots
// are required.
type Deps struct {
	Engine       *timer.Engine
	Presets      *presets.Store
	Settings     *settings.Store
	Snapshots    *timer.SnapshotStore
	BreakSeconds int
	TickInterval time.Duration
	Now          func() time.Time
}

type Model struct {
	ctx       context.Context
	engine    *timer.Engine
	presets   *presets.Store
	settings  *settings.Store
	snapshots *timer.SnapshotStore
	keys      *HandlerRegistry
	now       func() time.Time

	prefs        models.Settings
	breakSeconds int
	tickInterval time.Duration

	cursor      int
	mode        inputMode
	input       textinput.Model
	customBreak bool
	status      string
	statusErr   bool
	progress    progress.Model
	width       int
	height      int
}

// NewModel loads presets and settings, then resumes the persisted session if
// there is one. A session that ran out while the app was closed finishes here.
func NewModel(ctx context.Context, deps Deps) Model {
	m := Model{
		ctx:          ctx,
		engine:       deps.Engine,
		presets:      deps.Presets,
		settings:     deps.Settings,
		snapshots:    deps.Snapshots,
		now:          deps.Now,
		breakSeconds: deps.BreakSeconds,
		tickInterval: deps.TickInterval,
		progress:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(config.ProgressWidth), progress.WithoutPercentage()),
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.breakSeconds <= 0 {
		m.breakSeconds = int(config.DefaultBreakDuration / time.Second)
	}
	if m.tickInterval <= 0 {
		m.tickInterval = config.TickInterval
	}
	m.keys = defaultKeys()

	m.prefs = m.settings.Load(ctx)
	m.engine.SetOptions(optionsFrom(m.prefs))
	m.presets.Load(ctx)

	if snap, ok := m.snapshots.Load(ctx); ok {
		res := m.engine.Restore(snap, m.now())
		util.Debugf("restored session: total=%d remaining=%d running=%v", m.engine.Total(), res.Remaining, m.engine.IsRunning())
		m = m.handleResult(res)
	} else {
		m.engine.SetSession(m.prefs.DefaultCustomDuration(), m.prefs.DefaultCustomIsBreak)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickInterval)
}

func optionsFrom(s models.Settings) timer.Options {
	return timer.Options{
		Sound:         s.SoundEnabled,
		Haptics:       s.HapticsEnabled,
		Notifications: s.NotificationsEnabled,
	}
}

// presetEntry is one row of the combined built-in + saved list.
type presetEntry struct {
	preset     models.TimerPreset
	savedIndex int // -1 for built-ins
}

func (m Model) entries() []presetEntry {
	saved := m.presets.List()
	out := make([]presetEntry, 0, len(models.BuiltinPresets)+len(saved))
	for _, p := range models.BuiltinPresets {
		out = append(out, presetEntry{preset: p, savedIndex: -1})
	}
	for i, p := range saved {
		out = append(out, presetEntry{preset: p.Preset(), savedIndex: i})
	}
	return out
}

func (m Model) selected() (presetEntry, bool) {
	entries := m.entries()
	if m.cursor < 0 || m.cursor >= len(entries) {
		return presetEntry{}, false
	}
	return entries[m.cursor], true
}

func (m Model) persistSnapshot() {
	util.LogError("persist timer state", m.snapshots.Save(m.ctx, m.engine.Snapshot()))
}

func (m Model) setStatus(msg string) Model {
	m.status, m.statusErr = msg, false
	return m
}

func (m Model) setError(msg string) Model {
	m.status, m.statusErr = msg, true
	return m
}

func timeOf(msg TickMsg) time.Time {
	return time.Time(msg)
}
