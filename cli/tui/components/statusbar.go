package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/FM1201/aijohub/cli/tui/styles"
)

// StatusBar renders the dashboard header: product name on the left,
// signed-in user and key hints on the right.
type StatusBar struct {
	username string
	width    int
}

func NewStatusBar(username string) StatusBar {
	return StatusBar{username: username}
}

func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

func (sb StatusBar) View() string {
	left := styles.Title.Render("Aijo Hub") + styles.MutedText.Render("  ·  Supplier Kain")
	right := sb.username + styles.MutedText.Render("  ctrl+l logout · q quit")

	gap := sb.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return styles.StatusBar.Width(sb.width).Render(left + strings.Repeat(" ", gap) + right)
}
