package tui

import (
	"github.com/charmbracelet/lipgloss"

	"nbntrack/internal/cli"
	"nbntrack/internal/model"
	"nbntrack/internal/tui/theme"
)

func (a *App) viewBudgets() string {
	items := visibleFor(a, model.KindBudget, a.buds)

	rows := make([][]string, len(items))
	for i, b := range items {
		category := "—"
		if b.Category != nil {
			category = *b.Category
		}
		period := "—"
		if b.Period != "" {
			period = string(b.Period)
		}
		rows[i] = []string{
			string(b.Type),
			cli.FormatINR(b.Amount),
			category,
			period,
		}
	}

	hint := lipgloss.NewStyle().Foreground(theme.Active.TextDim).
		Render("saving a budget replaces any existing budget of the same type")

	return a.filterSummary(model.KindBudget) +
		renderList(
			[]string{"Type", "Amount", "Category", "Period"},
			rows, a.selected[model.KindBudget]) +
		"\n" + hint
}
