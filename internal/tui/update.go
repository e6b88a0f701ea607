package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles bubbletea messages and drives the controllers.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case runMsg:
		if msg.fn != nil {
			msg.fn()
		}
		return m, nil
	case mountMsg:
		m.mountAll()
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.syncSignals()
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case presetReloadedMsg:
		m.unmountAll()
		if err := m.load(msg.preset); err != nil {
			m.failure = err
			return m, m.watchCmd()
		}
		m.failure = nil
		m.status = fmt.Sprintf("reloaded %d animations", len(m.subjects))
		m.log.WithFields(map[string]any{"preset": msg.preset.Name}).Info("preset reloaded")
		m.mountAll()
		return m, m.watchCmd()
	case reloadFailedMsg:
		m.failure = msg.err
		m.log.Error(msg.err, "preset reload failed")
		return m, m.watchCmd()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		m.unmountAll()
		if m.watcher != nil {
			_ = m.watcher.Close()
		}
		return m, tea.Quit
	case "up", "k":
		m.offset--
		m.syncSignals()
	case "down", "j":
		m.offset++
		m.syncSignals()
	case "tab":
		if len(m.subjects) > 0 {
			m.cursor = (m.cursor + 1) % len(m.subjects)
			m.follow()
		}
	case "shift+tab":
		if len(m.subjects) > 0 {
			m.cursor = (m.cursor - 1 + len(m.subjects)) % len(m.subjects)
			m.follow()
		}
	case "h":
		if s := m.focused(); s != nil {
			s.ctrl.SetHovered(!s.ctrl.Signals().Hovered)
		}
	case " ":
		if s := m.focused(); s != nil {
			s.ctrl.SetActive(!s.ctrl.Signals().Active)
		}
	case "r":
		if s := m.focused(); s != nil {
			if s.ctrl.Restart() {
				m.status = fmt.Sprintf("restarted %s", s.id)
			} else {
				m.status = fmt.Sprintf("%s cannot animate right now", s.id)
			}
		}
	case "d":
		if s := m.focused(); s != nil {
			s.ctrl.SetDisabled(!s.ctrl.Signals().Disabled)
		}
	case "m":
		m.reduced = !m.reduced
		for _, s := range m.subjects {
			s.ctrl.SetReducedMotion(m.reduced)
		}
		if m.reduced {
			m.status = "reduced motion on"
		} else {
			m.status = "reduced motion off"
		}
	}
	return m, nil
}

func (m Model) focused() *subject {
	if len(m.subjects) == 0 {
		return nil
	}
	return m.subjects[m.cursor]
}

// follow scrolls the focused subject into view, then syncs signals.
func (m *Model) follow() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if last := m.offset + m.capacity() - 1; m.cursor > last {
		m.offset = m.cursor - m.capacity() + 1
	}
	m.syncSignals()
}

func (m Model) watchCmd() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return waitForChange(m.watcher)
}
