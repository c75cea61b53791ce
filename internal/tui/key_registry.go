package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m Model) (Model, tea.Cmd)

type KeyBinding struct {
	Keys        []string
	Help        string
	Description string
	Handler     KeyHandler
	Priority    int
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, key string) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		for _, k := range b.Keys {
			if k == key {
				next, cmd := b.Handler(m)
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

// HelpLine renders the bindings that carry a help label.
func (r *HandlerRegistry) HelpLine() string {
	var parts []string
	for _, b := range r.bindings {
		if b.Help == "" {
			continue
		}
		parts = append(parts, b.Help+" "+b.Description)
	}
	return strings.Join(parts, " · ")
}
