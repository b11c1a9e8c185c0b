package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"nbntrack/internal/cli"
	"nbntrack/internal/pipeline"
	"nbntrack/internal/tui/components"
	"nbntrack/internal/tui/theme"
)

func (a *App) viewDashboard() string {
	t := theme.Active
	w := a.width

	savingsNote := cli.FormatSavings(a.savings)

	cards := []components.Metric{
		{Label: "Monthly spending", Value: cli.FormatINR(a.stats.TotalMonthlySpending)},
		{Label: "Yearly projection", Value: cli.FormatINR(a.stats.YearlyProjection)},
		{Label: "Subscriptions", Value: cli.FormatINR(a.stats.SubscriptionSpending)},
		{Label: "Savings", Value: a.savingsFigure(), Note: savingsNote},
	}
	row := components.MetricCardRow(cards, w)

	halves := components.LayoutRow(w, 2)

	breakdown := components.ContentCard("Spending by category",
		a.renderBreakdown(components.CardInnerWidth(halves[0])), halves[0])

	trendBody := components.TrendLines(a.trends)
	if a.trends.Empty() {
		trendBody = lipgloss.NewStyle().Foreground(t.TextDim).Render("no trend data yet")
	}
	trends := components.ContentCard("Spending trend", trendBody, halves[1])

	middle := components.CardRow([]string{breakdown, trends})

	upcoming := components.ContentCard("Due in the next 7 days",
		a.renderUpcoming(), halves[0])
	advice := components.ContentCard("Suggestions",
		a.renderSuggestions(components.CardInnerWidth(halves[1])), halves[1])
	bottom := components.CardRow([]string{upcoming, advice})

	out := row + "\n" + middle + "\n" + bottom
	if len(a.stats.BudgetAlerts) > 0 {
		alertStyle := lipgloss.NewStyle().Foreground(t.Red)
		var alerts strings.Builder
		for _, al := range a.stats.BudgetAlerts {
			alerts.WriteString(alertStyle.Render(" ⚠ "+al) + "\n")
		}
		out += "\n" + strings.TrimRight(alerts.String(), "\n")
	}
	return out
}

func (a *App) savingsFigure() string {
	switch a.savings.State {
	case pipeline.SavingsOverspent:
		return "-" + cli.FormatINR(a.savings.Magnitude)
	default:
		return cli.FormatINR(a.savings.Magnitude)
	}
}

// renderBreakdown shows bars plus the share table figures.
func (a *App) renderBreakdown(width int) string {
	t := theme.Active
	if len(a.catChart) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("no spending recorded")
	}

	bars := components.CategoryBars(a.catChart, width, cli.FormatINR)

	pctStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	var pct strings.Builder
	for i, s := range a.shares {
		if i > 0 {
			pct.WriteString("  ")
		}
		pct.WriteString(pctStyle.Render(fmt.Sprintf("%s %s", s.Category, cli.FormatPercent(s))))
	}

	return bars + "\n\n" + pct.String()
}

func (a *App) renderUpcoming() string {
	t := theme.Active
	dim := lipgloss.NewStyle().Foreground(t.TextDim)
	name := lipgloss.NewStyle().Foreground(t.TextPrimary)
	amount := lipgloss.NewStyle().Foreground(t.Yellow)

	if len(a.stats.UpcomingSubscriptions) == 0 && len(a.stats.UpcomingExpenses) == 0 {
		return dim.Render("nothing due soon")
	}

	var b strings.Builder
	for _, s := range a.stats.UpcomingSubscriptions {
		fmt.Fprintf(&b, "%s %s %s\n",
			name.Render(s.Name),
			amount.Render(cli.FormatINR(s.Cost)),
			dim.Render(cli.FormatDate(s.NextDueDate)))
	}
	for _, e := range a.stats.UpcomingExpenses {
		fmt.Fprintf(&b, "%s %s %s\n",
			name.Render(e.Name),
			amount.Render(cli.FormatINR(e.Amount)),
			dim.Render(cli.FormatDate(e.Date)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a *App) renderSuggestions(width int) string {
	t := theme.Active
	if len(a.suggestions) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("no suggestions right now")
	}
	style := lipgloss.NewStyle().Foreground(t.TextMuted).Width(width)
	var b strings.Builder
	for _, s := range a.suggestions {
		b.WriteString(style.Render("• "+s) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
