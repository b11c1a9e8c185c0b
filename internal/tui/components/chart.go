package components

import (
	"fmt"
	"strings"

	"nbntrack/internal/pipeline"
	"nbntrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// CategoryBars renders chart slices as labeled horizontal bars. Each
// slice keeps its assigned palette color, so a category's color is
// stable across renders. formatValue renders the right-hand figure.
func CategoryBars(slices []pipeline.ChartSlice, width int, formatValue func(float64) string) string {
	t := theme.Active
	if len(slices) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("no data")
	}

	palette := t.ChartPalette()
	labelW := 0
	var maxVal float64
	for _, s := range slices {
		if w := lipgloss.Width(s.Label); w > labelW {
			labelW = w
		}
		if s.Value > maxVal {
			maxVal = s.Value
		}
	}

	barW := width - labelW - 12
	if barW < 5 {
		barW = 5
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for i, s := range slices {
		if i > 0 {
			b.WriteString("\n")
		}
		barLen := 0
		if maxVal > 0 {
			barLen = int(s.Value / maxVal * float64(barW))
		}
		color := palette[s.ColorIndex%len(palette)]
		bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", barLen))
		pad := strings.Repeat(" ", labelW-lipgloss.Width(s.Label))
		fmt.Fprintf(&b, "%s%s %s %s",
			labelStyle.Render(s.Label), pad, bar, valStyle.Render(formatValue(s.Value)))
	}
	return b.String()
}

// TrendLines renders the spending trend as one labeled sparkline per
// named series (total, subscriptions, expenses) with the covered month
// range underneath.
func TrendLines(series pipeline.TrendSeries) string {
	if series.Empty() {
		return ""
	}
	t := theme.Active

	rows := []struct {
		name   string
		slices []pipeline.ChartSlice
		color  lipgloss.Color
	}{
		{"total", series.Total, t.Accent},
		{"subscriptions", series.Subscriptions, t.Blue},
		{"expenses", series.Expenses, t.Green},
	}

	nameW := 0
	for _, r := range rows {
		if len(r.name) > nameW {
			nameW = len(r.name)
		}
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(labelStyle.Render(r.name))
		b.WriteString(strings.Repeat(" ", nameW-len(r.name)+1))
		b.WriteString(Sparkline(pipeline.SliceValues(r.slices), r.color))
		b.WriteString("\n")
	}

	first := series.Total[0].Label
	last := series.Total[len(series.Total)-1].Label
	b.WriteString(dimStyle.Render(first + " … " + last))
	return b.String()
}
