package components

import (
	"strings"
	"testing"

	"nbntrack/internal/model"
	"nbntrack/internal/pipeline"
)

func TestTrendLinesNamesAllSeries(t *testing.T) {
	series := pipeline.Trends([]model.TrendPoint{
		{Month: "2026-06", SubscriptionSpending: 900, ExpenseSpending: 3300, TotalSpending: 4200},
		{Month: "2026-07", SubscriptionSpending: 1000, ExpenseSpending: 2000, TotalSpending: 3000},
	})

	out := TrendLines(series)
	for _, want := range []string{"total", "subscriptions", "expenses", "2026-06", "2026-07"} {
		if !strings.Contains(out, want) {
			t.Errorf("trend lines missing %q", want)
		}
	}
	if got := strings.Count(out, "\n"); got != 3 {
		t.Errorf("trend lines span %d newlines, want 3 (one sparkline per series plus the range)", got)
	}
}

func TestTrendLinesEmpty(t *testing.T) {
	if out := TrendLines(pipeline.TrendSeries{}); out != "" {
		t.Errorf("empty series rendered %q, want nothing", out)
	}
}
