package tui

import (
	"strings"
	"testing"

	"nbntrack/internal/config"
	"nbntrack/internal/log"
	"nbntrack/internal/model"
)

func TestViewBudgetsShowsReplaceHint(t *testing.T) {
	a := NewApp(nil, nil, config.Config{}, log.Discard("tui-test"))
	a.buds = []model.Budget{{ID: "b1", Type: model.BudgetAnnual, Amount: 50000}}

	view := a.viewBudgets()
	if !strings.Contains(view, "replaces any existing budget of the same type") {
		t.Error("budgets view missing the replace-on-save hint")
	}
}
