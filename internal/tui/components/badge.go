package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/glint/internal/lifecycle"
)

var (
	idleBadge    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	runningBadge = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)
	doneBadge    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	staticBadge  = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
)

// StateLabel is the short text shown for a subject's lifecycle state. A
// static subject is one whose motion is bypassed.
func StateLabel(state lifecycle.State, static bool) string {
	if static {
		return "static"
	}
	switch state {
	case lifecycle.Running:
		return "running"
	case lifecycle.Completed:
		return "done"
	default:
		return "idle"
	}
}

// StateBadge renders StateLabel with a color per state.
func StateBadge(state lifecycle.State, static bool) string {
	label := "[" + StateLabel(state, static) + "]"
	switch {
	case static:
		return staticBadge.Render(label)
	case state == lifecycle.Running:
		return runningBadge.Render(label)
	case state == lifecycle.Completed:
		return doneBadge.Render(label)
	default:
		return idleBadge.Render(label)
	}
}
