package pipeline

import (
	"sort"

	"nbntrack/internal/model"
)

// CategoryShare is one row of the dashboard percentage table.
type CategoryShare struct {
	Category string
	Amount   float64
	// Percent of total spending; meaningful only when Applicable.
	Percent float64
	// Applicable is false when the total is zero, in which case no
	// percentage can be stated.
	Applicable bool
}

// CategoryShares computes each category's share of the month's total
// spending, sorted by amount descending. Ties keep breakdown order.
// The total is the server's figure, not the breakdown sum, so the
// shares stay consistent with the headline number.
func CategoryShares(breakdown model.CategoryBreakdown, total float64) []CategoryShare {
	shares := make([]CategoryShare, len(breakdown))
	for i, e := range breakdown {
		s := CategoryShare{Category: e.Category, Amount: e.Amount}
		if total > 0 {
			s.Percent = e.Amount / total * 100
			s.Applicable = true
		}
		shares[i] = s
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Amount > shares[j].Amount
	})
	return shares
}

// SavingsState classifies the month's savings figure.
type SavingsState int

const (
	SavingsUnchanged SavingsState = iota
	SavingsSaved
	SavingsOverspent
)

// SavingsResult carries the classification plus the absolute figure to
// display alongside it.
type SavingsResult struct {
	State     SavingsState
	Magnitude float64
}

// ClassifySavings maps the signed savings figure onto its display
// state: positive means saved, negative means overspent, zero means
// unchanged. Magnitude is always non-negative.
func ClassifySavings(savings float64) SavingsResult {
	switch {
	case savings > 0:
		return SavingsResult{State: SavingsSaved, Magnitude: savings}
	case savings < 0:
		return SavingsResult{State: SavingsOverspent, Magnitude: -savings}
	default:
		return SavingsResult{State: SavingsUnchanged}
	}
}

// ChartSlice is one labeled value with a stable palette slot.
type ChartSlice struct {
	Label string
	Value float64
	// ColorIndex selects a palette entry; the renderer wraps it around
	// its palette length.
	ColorIndex int
}

// CategoryChart maps the breakdown onto chart slices in breakdown
// order, assigning palette indexes cyclically over paletteSize.
func CategoryChart(breakdown model.CategoryBreakdown, paletteSize int) []ChartSlice {
	if paletteSize <= 0 {
		paletteSize = 1
	}
	out := make([]ChartSlice, len(breakdown))
	for i, e := range breakdown {
		out[i] = ChartSlice{Label: e.Category, Value: e.Amount, ColorIndex: i % paletteSize}
	}
	return out
}

// TrendSeries groups the backend's time-ordered trend points under the
// three named spending series. Each series keeps input order and the
// same month labels, so they stay index-aligned.
type TrendSeries struct {
	Subscriptions []ChartSlice
	Expenses      []ChartSlice
	Total         []ChartSlice
}

// Empty reports whether there are no trend points.
func (s TrendSeries) Empty() bool { return len(s.Total) == 0 }

// Trends projects the trend points into the three named series.
func Trends(points []model.TrendPoint) TrendSeries {
	s := TrendSeries{
		Subscriptions: make([]ChartSlice, len(points)),
		Expenses:      make([]ChartSlice, len(points)),
		Total:         make([]ChartSlice, len(points)),
	}
	for i, p := range points {
		s.Subscriptions[i] = ChartSlice{Label: p.Month, Value: p.SubscriptionSpending}
		s.Expenses[i] = ChartSlice{Label: p.Month, Value: p.ExpenseSpending}
		s.Total[i] = ChartSlice{Label: p.Month, Value: p.TotalSpending}
	}
	return s
}

// SliceValues extracts the raw values of a series for sparkline use.
func SliceValues(slices []ChartSlice) []float64 {
	out := make([]float64, len(slices))
	for i, s := range slices {
		out[i] = s.Value
	}
	return out
}
