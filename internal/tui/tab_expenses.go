package tui

import (
	"nbntrack/internal/cli"
	"nbntrack/internal/model"
)

func (a *App) viewExpenses() string {
	items := visibleFor(a, model.KindExpense, a.exps)

	rows := make([][]string, len(items))
	for i, e := range items {
		recurring := "—"
		if e.IsRecurring {
			recurring = string(e.RecurringFrequency)
		}
		rows[i] = []string{
			e.Name,
			cli.FormatINR(e.Amount),
			e.Category,
			cli.FormatTags(e.Tags),
			cli.FormatDate(e.Date),
			recurring,
		}
	}

	return a.filterSummary(model.KindExpense) +
		renderList(
			[]string{"Name", "Amount", "Category", "Tags", "Date", "Recurring"},
			rows, a.selected[model.KindExpense])
}
