package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Header    lipgloss.Style
	Clock     lipgloss.Style
	Work      lipgloss.Style
	Break     lipgloss.Style
	Preset    lipgloss.Style
	Selected  lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Input     lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Clock:     lipgloss.NewStyle().Bold(true).Padding(1, 0),
		Work:      lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		Break:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Preset:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(40),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true), // Cyan
		Clock:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Padding(1, 0),
		Work:      lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true), // Purple
		Break:     lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true), // Orange
		Preset:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(40),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
	},
}

// CurrentTheme holds the active theme.
var CurrentTheme = Themes["default"]

// SetTheme switches themes; unknown names are ignored.
func SetTheme(name string) bool {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
		return true
	}
	return false
}
