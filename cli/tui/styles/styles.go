package styles

import "github.com/charmbracelet/lipgloss"

// Shared color palette for all TUI surfaces.
var (
	Primary   = lipgloss.Color("69")
	Highlight = lipgloss.Color("214")
	Surface   = lipgloss.Color("236")
	Border    = lipgloss.Color("240")
	Muted     = lipgloss.Color("241")
	Danger    = lipgloss.Color("196")
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(Primary)

	ErrorText = lipgloss.NewStyle().Foreground(Danger)

	MutedText = lipgloss.NewStyle().Foreground(Muted)

	StatusBar = lipgloss.NewStyle().
			Background(Surface).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	Modal = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(1, 2)
)
