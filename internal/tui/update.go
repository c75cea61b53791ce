package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/akyairhashvil/focusclock/internal/config"
	"github.com/akyairhashvil/focusclock/internal/models"
	"github.com/akyairhashvil/focusclock/internal/notify"
	"github.com/akyairhashvil/focusclock/internal/presets"
	"github.com/akyairhashvil/focusclock/internal/timer"
	"github.com/akyairhashvil/focusclock/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		return m.handleTick(msg)
	case AlertMsg:
		res := m.engine.Tick(m.now())
		m = m.handleResult(res)
		if res.Finished && m.mode != modeBreakOffer {
			m = m.setStatus(notify.Alert(msg).Message())
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.persistSnapshot()
			return m, tea.Quit
		}
		switch m.mode {
		case modeCustom:
			return m.handleCustomInput(msg)
		case modeSaveTitle:
			return m.handleSaveTitle(msg)
		case modeBreakOffer:
			return m.handleBreakOffer(msg)
		}
		next, cmd, _ := m.keys.Handle(m, msg.String())
		return next, cmd
	}
	return m, nil
}

func (m Model) handleTick(msg TickMsg) (Model, tea.Cmd) {
	if m.engine.IsRunning() {
		m = m.handleResult(m.engine.Tick(timeOf(msg)))
	}
	return m, tickCmd(m.tickInterval)
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	m.width, m.height = msg.Width, msg.Height
	target := config.ProgressWidth
	if m.width > 0 && m.width < config.CompactModeThreshold {
		target = m.width / 2
	}
	m.progress.Width = util.AtLeast(target, config.MinProgressWidth)
	return m
}

// handleResult reacts to a finished session and persists the new state.
func (m Model) handleResult(res timer.Result) Model {
	if !res.Finished {
		return m
	}
	m.persistSnapshot()
	if res.OfferBreak {
		m.mode = modeBreakOffer
		return m.setStatus(fmt.Sprintf("Session complete. Start a %s break? (y/n)", FormatClock(m.breakSeconds)))
	}
	return m.setStatus("Break finished.")
}

func defaultKeys() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{Keys: []string{" "}, Help: "space", Description: "start/pause", Handler: handleToggle, Priority: 10})
	r.Register(KeyBinding{Keys: []string{"r"}, Help: "r", Description: "reset", Handler: handleReset, Priority: 9})
	r.Register(KeyBinding{Keys: []string{"enter"}, Help: "enter", Description: "use preset", Handler: handleApplySelected, Priority: 8})
	r.Register(KeyBinding{Keys: []string{"c"}, Help: "c", Description: "custom", Handler: handleOpenCustom, Priority: 7})
	r.Register(KeyBinding{Keys: []string{"s"}, Help: "s", Description: "save preset", Handler: handleOpenSave, Priority: 6})
	r.Register(KeyBinding{Keys: []string{"x"}, Help: "x", Description: "delete", Handler: handleDeleteSelected, Priority: 5})
	r.Register(KeyBinding{Keys: []string{"K", "shift+up"}, Help: "K/J", Description: "move", Handler: moveSelected(-1), Priority: 4})
	r.Register(KeyBinding{Keys: []string{"J", "shift+down"}, Handler: moveSelected(1), Priority: 4})
	r.Register(KeyBinding{Keys: []string{"up", "k"}, Handler: moveCursor(-1), Priority: 3})
	r.Register(KeyBinding{Keys: []string{"down", "j"}, Handler: moveCursor(1), Priority: 3})
	r.Register(KeyBinding{Keys: []string{"S"}, Help: "S/H/N", Description: "sound/haptics/alerts", Handler: toggleSetting(func(s *models.Settings) *bool { return &s.SoundEnabled }, "Sound"), Priority: 2})
	r.Register(KeyBinding{Keys: []string{"H"}, Handler: toggleSetting(func(s *models.Settings) *bool { return &s.HapticsEnabled }, "Haptics"), Priority: 2})
	r.Register(KeyBinding{Keys: []string{"N"}, Handler: toggleSetting(func(s *models.Settings) *bool { return &s.NotificationsEnabled }, "Notifications"), Priority: 2})
	r.Register(KeyBinding{Keys: []string{"q"}, Help: "q", Description: "quit", Handler: handleQuit, Priority: 1})
	for i := 1; i <= config.MaxQuickSelect; i++ {
		r.Register(KeyBinding{Keys: []string{fmt.Sprint(i)}, Handler: quickSelect(i - 1)})
	}
	return r
}

func handleToggle(m Model) (Model, tea.Cmd) {
	m = m.handleResult(m.engine.Toggle())
	m.persistSnapshot()
	if m.engine.IsRunning() {
		return m.setStatus(""), nil
	}
	if m.mode == modeBreakOffer {
		return m, nil
	}
	return m.setStatus("Paused."), nil
}

func handleReset(m Model) (Model, tea.Cmd) {
	m.engine.Reset()
	m.persistSnapshot()
	return m.setStatus("Reset."), nil
}

func handleQuit(m Model) (Model, tea.Cmd) {
	m.persistSnapshot()
	return m, tea.Quit
}

func moveCursor(delta int) KeyHandler {
	return func(m Model) (Model, tea.Cmd) {
		m.cursor = util.Clamp(m.cursor+delta, 0, len(m.entries())-1)
		return m, nil
	}
}

func quickSelect(idx int) KeyHandler {
	return func(m Model) (Model, tea.Cmd) {
		if idx >= len(m.entries()) {
			return m, nil
		}
		m.cursor = idx
		return handleApplySelected(m)
	}
}

// handleApplySelected loads the highlighted preset as a fresh, stopped
// session.
func handleApplySelected(m Model) (Model, tea.Cmd) {
	entry, ok := m.selected()
	if !ok {
		return m, nil
	}
	p := entry.preset
	m.engine.SetSession(p.DurationSeconds, p.IsBreak)
	m.persistSnapshot()
	return m.setStatus(fmt.Sprintf("Loaded %s (%s).", p.Title, FormatClock(m.engine.Total()))), nil
}

func handleDeleteSelected(m Model) (Model, tea.Cmd) {
	entry, ok := m.selected()
	if !ok || entry.savedIndex < 0 {
		return m.setError("Built-in presets cannot be deleted."), nil
	}
	if err := m.presets.Remove(m.ctx, entry.preset.ID); err != nil {
		util.LogError("remove preset", err)
		return m.setError("Could not delete preset."), nil
	}
	m.cursor = util.Clamp(m.cursor, 0, len(m.entries())-1)
	return m.setStatus(fmt.Sprintf("Deleted %s.", entry.preset.Title)), nil
}

func moveSelected(delta int) KeyHandler {
	return func(m Model) (Model, tea.Cmd) {
		entry, ok := m.selected()
		if !ok || entry.savedIndex < 0 {
			return m, nil
		}
		to := entry.savedIndex + delta
		if to < 0 || to >= m.presets.Len() {
			return m, nil
		}
		if err := m.presets.Reorder(m.ctx, entry.savedIndex, to); err != nil {
			util.LogError("reorder presets", err)
			return m.setError("Could not move preset."), nil
		}
		m.cursor += delta
		return m, nil
	}
}

func toggleSetting(field func(*models.Settings) *bool, label string) KeyHandler {
	return func(m Model) (Model, tea.Cmd) {
		next, err := m.settings.Update(m.ctx, func(s *models.Settings) {
			p := field(s)
			*p = !*p
		})
		m.prefs = next
		m.engine.SetOptions(optionsFrom(next))
		if err != nil {
			util.LogError("save settings", err)
			return m.setError("Could not save settings."), nil
		}
		state := "off"
		if *field(&next) {
			state = "on"
		}
		return m.setStatus(fmt.Sprintf("%s %s.", label, state)), nil
	}
}

func newInput(placeholder, value string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 30
	ti.SetValue(value)
	ti.Focus()
	return ti
}

func handleOpenCustom(m Model) (Model, tea.Cmd) {
	m.mode = modeCustom
	m.customBreak = m.prefs.DefaultCustomIsBreak
	m.input = newInput("mm:ss", splitClock(m.prefs.DefaultCustomMinutes, m.prefs.DefaultCustomSeconds), 8)
	return m.setStatus(""), textinput.Blink
}

func (m Model) handleCustomInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		return m.setStatus(""), nil
	case "tab":
		m.customBreak = !m.customBreak
		return m, nil
	case "enter":
		seconds, err := ParseClock(m.input.Value())
		if err != nil {
			return m.setError(err.Error()), nil
		}
		m.mode = modeNormal
		isBreak := m.customBreak
		next, err := m.settings.Update(m.ctx, func(s *models.Settings) {
			s.DefaultCustomMinutes = seconds / 60
			s.DefaultCustomSeconds = seconds % 60
			s.DefaultCustomIsBreak = isBreak
		})
		m.prefs = next
		util.LogError("save custom duration", err)
		m.engine.SetSession(seconds, isBreak)
		m.engine.Start()
		m.persistSnapshot()
		return m.setStatus(""), nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func handleOpenSave(m Model) (Model, tea.Cmd) {
	title := models.PresetTitle(m.engine.Total())
	if m.engine.IsBreak() {
		title += " break"
	}
	m.mode = modeSaveTitle
	m.input = newInput("title", title, config.MaxPresetTitleLength)
	return m.setStatus(""), textinput.Blink
}

func (m Model) handleSaveTitle(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		return m.setStatus(""), nil
	case "enter":
		m.mode = modeNormal
		title := strings.TrimSpace(m.input.Value())
		if title == "" {
			title = models.PresetTitle(m.engine.Total())
		}
		p, err := m.presets.Add(m.ctx, title, m.engine.Total(), m.engine.IsBreak())
		switch {
		case errors.Is(err, presets.ErrDuplicatePreset):
			return m.setError("That preset is already saved."), nil
		case err != nil:
			util.LogError("save preset", err)
			return m.setError("Could not save preset."), nil
		}
		m.cursor = len(m.entries()) - 1
		return m.setStatus(fmt.Sprintf("Saved %s.", p.Title)), nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleBreakOffer(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.mode = modeNormal
		m.engine.SetSession(m.breakSeconds, true)
		m.engine.Start()
		m.persistSnapshot()
		return m.setStatus("Enjoy the break."), nil
	case "n", "esc":
		m.mode = modeNormal
		return m.setStatus(""), nil
	case "q":
		return handleQuit(m)
	}
	return m, nil
}
