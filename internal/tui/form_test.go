package tui

import (
	"errors"
	"testing"
	"time"

	"nbntrack/internal/model"
)

func TestSubscriptionValuesRoundTrip(t *testing.T) {
	in := model.Subscription{
		Name:             "Netflix",
		Cost:             649,
		BillingFrequency: model.BillingYearly,
		NextDueDate:      time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		Category:         "streaming",
	}

	v := valuesFromSubscription(in)
	out, err := v.toModel()
	if err != nil {
		t.Fatalf("toModel: %v", err)
	}
	if out.Name != in.Name || out.Cost != in.Cost || out.Category != in.Category {
		t.Errorf("round trip changed fields: %+v", out)
	}
	if !out.NextDueDate.Equal(in.NextDueDate) {
		t.Errorf("due date = %v, want %v", out.NextDueDate, in.NextDueDate)
	}
	if !out.IsActive {
		t.Error("saved subscription not active")
	}
}

func TestSubscriptionValuesDefaults(t *testing.T) {
	v := valuesFromSubscription(model.Subscription{})
	if v.frequency != string(model.BillingMonthly) {
		t.Errorf("default frequency = %q, want monthly", v.frequency)
	}
	if v.category != "other" {
		t.Errorf("default category = %q, want other", v.category)
	}
}

func TestExpenseValuesParseTags(t *testing.T) {
	v := expenseValues{
		name:     "Groceries",
		amount:   "1250",
		category: "food",
		tags:     "groceries,  monthly ,, essential",
		date:     "2026-08-20",
	}
	out, err := v.toModel()
	if err != nil {
		t.Fatalf("toModel: %v", err)
	}
	if len(out.Tags) != 3 {
		t.Errorf("tags = %v, want 3 entries", out.Tags)
	}
	if out.RecurringFrequency != "" {
		t.Errorf("non-recurring expense kept frequency %q", out.RecurringFrequency)
	}
}

func TestExpenseValuesRejectBadAmount(t *testing.T) {
	v := expenseValues{name: "X", amount: "-3", category: "food", date: "2026-08-20"}
	if _, err := v.toModel(); !errors.Is(err, model.ErrNonPositive) {
		t.Errorf("err = %v, want ErrNonPositive", err)
	}
}

func TestBudgetValuesAnnualDropsCategory(t *testing.T) {
	v := budgetValues{budgetType: string(model.BudgetAnnual), amount: "100000", category: "food", period: "yearly"}
	out, err := v.toModel()
	if err != nil {
		t.Fatalf("toModel: %v", err)
	}
	if out.Category != nil {
		t.Errorf("annual budget kept category %q", *out.Category)
	}
}

func TestBudgetValuesCategoryRequired(t *testing.T) {
	v := budgetValues{budgetType: string(model.BudgetCategory), amount: "5000", category: "food", period: "monthly"}
	out, err := v.toModel()
	if err != nil {
		t.Fatalf("toModel: %v", err)
	}
	if out.Category == nil || *out.Category != "food" {
		t.Error("category budget lost its category")
	}
}
