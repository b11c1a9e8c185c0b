package tui

import (
	"nbntrack/internal/cli"
	"nbntrack/internal/model"
)

func (a *App) viewSubscriptions() string {
	items := visibleFor(a, model.KindSubscription, a.subs)

	rows := make([][]string, len(items))
	for i, s := range items {
		active := "yes"
		if !s.IsActive {
			active = "no"
		}
		rows[i] = []string{
			s.Name,
			cli.FormatINR(s.Cost),
			cli.FormatFrequency(s.BillingFrequency),
			cli.FormatDate(s.NextDueDate),
			s.Category,
			active,
		}
	}

	return a.filterSummary(model.KindSubscription) +
		renderList(
			[]string{"Name", "Cost", "Billing", "Next due", "Category", "Active"},
			rows, a.selected[model.KindSubscription])
}
