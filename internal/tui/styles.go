package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	statusStyle     = lipgloss.NewStyle().Italic(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	bannerStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Bold(true).Padding(0, 1)
	activeTabStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	tabStyle        = lipgloss.NewStyle().Faint(true)
	selectedStyle   = lipgloss.NewStyle().Bold(true)
)
