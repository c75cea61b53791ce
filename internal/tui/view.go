package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/focusclock/internal/config"
	"github.com/akyairhashvil/focusclock/internal/timer"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) View() string {
	t := CurrentTheme
	sections := []string{
		m.renderHeader(),
		m.renderClock(),
		m.progress.ViewAs(m.engine.Progress()),
		m.renderStatus(),
	}
	if m.mode == modeCustom || m.mode == modeSaveTitle {
		sections = append(sections, m.renderInput())
	}
	sections = append(sections, m.renderPresets(), t.Dim.Render(m.keys.HelpLine()))
	return t.Base.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderHeader() string {
	t := CurrentTheme
	kind := t.Work.Render("FOCUS")
	if m.engine.IsBreak() {
		kind = t.Break.Render("BREAK")
	}
	flags := fmt.Sprintf("sound %s · haptics %s · alerts %s", onOff(m.prefs.SoundEnabled), onOff(m.prefs.HapticsEnabled), onOff(m.prefs.NotificationsEnabled))
	return lipgloss.JoinHorizontal(lipgloss.Top,
		t.Header.Render(config.AppName+" "+VersionLabel()), "  ", kind, "  ", t.Dim.Render(flags))
}

func (m Model) renderClock() string {
	label := FormatClock(m.engine.Remaining()) + " / " + FormatClock(m.engine.Total())
	switch {
	case m.engine.Phase() == timer.PhaseFinished:
		label += "  done"
	case m.engine.Paused():
		label += "  paused"
	case m.engine.IsRunning():
		label += "  running"
	}
	return CurrentTheme.Clock.Render(label)
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return CurrentTheme.Error.Render(m.status)
	}
	return CurrentTheme.Status.Render(m.status)
}

func (m Model) renderInput() string {
	label := "Preset title"
	if m.mode == modeCustom {
		label = "Custom mm:ss, tab toggles"
		if m.customBreak {
			label += " [break]"
		} else {
			label += " [work]"
		}
	}
	return CurrentTheme.Input.Render(label + "\n" + m.input.View())
}

func (m Model) renderPresets() string {
	t := CurrentTheme
	var b strings.Builder
	b.WriteString(t.Highlight.Render("Presets"))
	b.WriteString("\n")
	for i, e := range m.entries() {
		key := "  "
		if i < config.MaxQuickSelect {
			key = fmt.Sprintf("%d ", i+1)
		}
		title := ansi.Truncate(e.preset.Title, config.MaxPresetTitleWidth, config.TruncationSuffix)
		kind := "work"
		if e.preset.IsBreak {
			kind = "break"
		}
		origin := ""
		if e.savedIndex >= 0 {
			origin = " *"
		}
		line := fmt.Sprintf("%s%-*s %8s %-5s%s", key, config.MaxPresetTitleWidth, title, FormatClock(e.preset.DurationSeconds), kind, origin)
		if i == m.cursor {
			b.WriteString(t.Selected.Render("> " + line))
		} else {
			b.WriteString(t.Preset.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
