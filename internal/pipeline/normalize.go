// Package pipeline contains the client-side data plumbing: input
// normalization, list filtering, dashboard projection, and the
// write-then-refresh mutation coordinator.
package pipeline

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"nbntrack/internal/model"
)

// NormalizeTags splits a comma-separated tag string, trims whitespace,
// and drops empty fragments. "groceries,  monthly ,, essential" yields
// three tags.
func NormalizeTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// ParseAmount converts a form amount field into a positive float.
func ParseAmount(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", raw)
	}
	if v <= 0 {
		return 0, model.ErrNonPositive
	}
	return v, nil
}

// ParseDate converts a YYYY-MM-DD form field into a UTC midnight
// timestamp, the shape the backend stores.
func ParseDate(raw string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", raw)
	}
	return t.UTC(), nil
}

// NormalizeExpense enforces the recurring invariant: a non-recurring
// expense carries no frequency.
func NormalizeExpense(e model.Expense) model.Expense {
	if !e.IsRecurring {
		e.RecurringFrequency = ""
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
	return e
}

// NormalizeBudget enforces the type/category invariant: an annual
// budget carries no category.
func NormalizeBudget(b model.Budget) model.Budget {
	if b.Type == model.BudgetAnnual {
		b.Category = nil
	}
	return b
}
