package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/glint/internal/lifecycle"
	"github.com/alexisbeaulieu97/glint/internal/trigger"
	"github.com/alexisbeaulieu97/glint/internal/tui/components"
)

const helpText = "↑/↓ scroll • tab focus • h hover • space activate • r restart • d disable • m motion • q quit"

// View renders the visible subjects and the status footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	header := titleStyle.Render(fmt.Sprintf("glint • %s", m.title))
	if m.reduced {
		header = lipgloss.JoinHorizontal(lipgloss.Left, header, " ", subtitleStyle.Render("(reduced motion)"))
	}
	sections = append(sections, header, "")

	bar := components.NewProgress(min(30, max(10, m.width/3)))
	for i, s := range m.subjects {
		if !m.visible(i) {
			continue
		}
		sections = append(sections, m.renderSubject(s, i == m.cursor, bar)...)
	}

	if m.failure != nil {
		sections = append(sections, errorStyle.Render(m.failure.Error()))
	} else if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}
	sections = append(sections, helpStyle.Render(helpText))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderSubject(s *subject, focused bool, bar components.Progress) []string {
	out := s.ctrl.Output()
	signals := s.ctrl.Signals()
	static := trigger.Bypass(signals)

	marker := "  "
	name := nameStyle.Render(s.id)
	if focused {
		marker = "› "
		name = focusedNameStyle.Render(s.id)
	}

	indicator := " "
	if out.State == lifecycle.Running {
		indicator = m.spinner.View()
		if m.reduced {
			indicator = spinnerStyle.Render("•")
		}
	}

	meta := metaStyle.Render(fmt.Sprintf("%s · %s%s", s.ctrl.Engine().Kind(), s.ctrl.Config().Mode, signalSummary(signals)))
	line := strings.Join([]string{marker + name, meta, components.StateBadge(out.State, static), indicator}, " ")

	text := out.Text
	if ratio, ok := components.ProgressOf(s.ctrl.Engine()); ok && out.State != lifecycle.Idle && !static {
		text = lipgloss.JoinHorizontal(lipgloss.Left, text, "  ", bar.View(ratio))
	}

	return []string{line, textStyle.Render(text), ""}
}

func signalSummary(s trigger.Signals) string {
	var flags []string
	if s.Hovered {
		flags = append(flags, "hovered")
	}
	if s.Active {
		flags = append(flags, "active")
	}
	if s.Disabled {
		flags = append(flags, "disabled")
	}
	if len(flags) == 0 {
		return ""
	}
	return " · " + strings.Join(flags, ", ")
}
