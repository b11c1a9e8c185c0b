package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DashboardStats is the server-computed aggregate consumed read-only by
// the dashboard. The client never derives these figures itself.
type DashboardStats struct {
	TotalMonthlySpending  float64           `json:"total_monthly_spending"`
	TotalYearlySpending   float64           `json:"total_yearly_spending"`
	YearlyProjection      float64           `json:"yearly_projection"`
	SubscriptionSpending  float64           `json:"subscription_spending"`
	ExpenseSpending       float64           `json:"expense_spending"`
	SavingsThisMonth      float64           `json:"savings_this_month"`
	CategoryBreakdown     CategoryBreakdown `json:"category_breakdown"`
	SpendingTrends        []TrendPoint      `json:"spending_trends"`
	UpcomingSubscriptions []Subscription    `json:"upcoming_subscriptions"`
	UpcomingExpenses      []Expense         `json:"upcoming_expenses"`
	BudgetAlerts          []string          `json:"budget_alerts"`
}

// TrendPoint is one month of aggregate spending, already time-ordered
// by the backend.
type TrendPoint struct {
	Month                string  `json:"month"`
	SubscriptionSpending float64 `json:"subscription_spending"`
	ExpenseSpending      float64 `json:"expense_spending"`
	TotalSpending        float64 `json:"total_spending"`
}

// CategoryAmount is one category_breakdown entry.
type CategoryAmount struct {
	Category string
	Amount   float64
}

// CategoryBreakdown preserves the JSON object's key order. A plain map
// would randomize iteration order and make the chart palette assignment
// nondeterministic between renders.
type CategoryBreakdown []CategoryAmount

// Get returns the amount for a category, or zero if absent.
func (cb CategoryBreakdown) Get(category string) float64 {
	for _, e := range cb {
		if e.Category == category {
			return e.Amount
		}
	}
	return 0
}

// UnmarshalJSON decodes the breakdown object keeping entry order.
func (cb *CategoryBreakdown) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("category_breakdown: expected object, got %v", tok)
	}

	out := CategoryBreakdown{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("category_breakdown: non-string key %v", keyTok)
		}
		var amount float64
		if err := dec.Decode(&amount); err != nil {
			return fmt.Errorf("category_breakdown[%s]: %w", key, err)
		}
		out = append(out, CategoryAmount{Category: key, Amount: amount})
	}

	*cb = out
	return nil
}

// MarshalJSON re-encodes the breakdown as an object in stored order.
func (cb CategoryBreakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range cb {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Category)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Amount)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// SuggestionList is the /suggestions response envelope.
type SuggestionList struct {
	Suggestions []string `json:"suggestions"`
}
