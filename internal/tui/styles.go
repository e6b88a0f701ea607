package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	nameStyle        = lipgloss.NewStyle().Bold(true)
	focusedNameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	metaStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	textStyle        = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("252"))
	spinnerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))

	statusStyle = lipgloss.NewStyle().MarginTop(1).Foreground(lipgloss.Color("244"))
	errorStyle  = lipgloss.NewStyle().MarginTop(1).Foreground(lipgloss.Color("196")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)
