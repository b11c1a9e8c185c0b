package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"nbntrack/internal/model"
	"nbntrack/internal/pipeline"
	"nbntrack/internal/tui/theme"
)

// renderList draws a column-aligned list with the selected row
// highlighted. Column widths come from the widest cell.
func renderList(headers []string, rows [][]string, selected int) string {
	t := theme.Active

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				if w := lipgloss.Width(cell); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	line := func(cells []string, style lipgloss.Style, marker string) string {
		var b strings.Builder
		b.WriteString(marker)
		for i, cell := range cells {
			pad := widths[i] - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			b.WriteString(cell + strings.Repeat(" ", pad+2))
		}
		return style.Render(strings.TrimRight(b.String(), " "))
	}

	var b strings.Builder
	b.WriteString(line(headers, headerStyle, "  ") + "\n")
	if len(rows) == 0 {
		b.WriteString(dimStyle.Render("  nothing to show"))
		return b.String()
	}
	for i, row := range rows {
		style, marker := rowStyle, "  "
		if i == selected {
			style, marker = selStyle, "> "
		}
		b.WriteString(line(row, style, marker) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// filterSummary shows the active predicates above a list.
func (a *App) filterSummary(kind model.Kind) string {
	f := a.filters[kind]
	if f.IsZero() {
		return ""
	}
	t := theme.Active
	style := lipgloss.NewStyle().Foreground(t.TextMuted)

	var parts []string
	if f.Search != "" {
		parts = append(parts, "name~"+f.Search)
	}
	if f.Category != "" {
		parts = append(parts, "category="+f.Category)
	}
	return style.Render(" filter: "+strings.Join(parts, " ")) + "\n"
}

// visibleFor returns the filtered slice for a kind, used by list tabs.
func visibleFor[T pipeline.Filterable](a *App, kind model.Kind, items []T) []T {
	return pipeline.Visible(items, a.filters[kind])
}
