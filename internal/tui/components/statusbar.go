package components

import (
	"nbntrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. notice is a transient
// message (mutation result, refresh error) shown on the right.
func RenderStatusBar(width int, notice string, noticeIsError bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [a]dd  [enter]edit  [D]elete  [/]search  [f]ilter  [r]efresh  [E]xport  [q]uit"

	right := ""
	if notice != "" {
		noticeStyle := lipgloss.NewStyle().Foreground(t.Green)
		if noticeIsError {
			noticeStyle = lipgloss.NewStyle().Foreground(t.Red)
		}
		right = noticeStyle.Render(notice) + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
