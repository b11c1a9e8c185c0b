package pipeline

import (
	"testing"
	"time"

	"nbntrack/internal/model"
)

func TestNormalizeTags(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"groceries,  monthly ,, essential", []string{"groceries", "monthly", "essential"}},
		{"", nil},
		{" , ,", nil},
		{"single", []string{"single"}},
		{"a,b", []string{"a", "b"}},
	}
	for _, tc := range cases {
		got := NormalizeTags(tc.in)
		if len(got) != len(tc.want) {
			t.Errorf("NormalizeTags(%q) = %v, want %v", tc.in, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("NormalizeTags(%q)[%d] = %q, want %q", tc.in, i, got[i], tc.want[i])
			}
		}
	}
}

func TestParseAmount(t *testing.T) {
	if v, err := ParseAmount(" 649.50 "); err != nil || v != 649.50 {
		t.Errorf("ParseAmount = %v, %v; want 649.50, nil", v, err)
	}
	if _, err := ParseAmount("0"); err == nil {
		t.Error("zero amount accepted")
	}
	if _, err := ParseAmount("-5"); err == nil {
		t.Error("negative amount accepted")
	}
	if _, err := ParseAmount("abc"); err == nil {
		t.Error("non-numeric amount accepted")
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-09-05")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	want := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}
	if _, err := ParseDate("05/09/2026"); err == nil {
		t.Error("wrong format accepted")
	}
}

func TestNormalizeExpenseClearsFrequency(t *testing.T) {
	e := NormalizeExpense(model.Expense{IsRecurring: false, RecurringFrequency: model.RecurringMonthly})
	if e.RecurringFrequency != "" {
		t.Errorf("frequency = %q, want empty for non-recurring", e.RecurringFrequency)
	}
	if e.Tags == nil {
		t.Error("tags not defaulted to empty slice")
	}

	r := NormalizeExpense(model.Expense{IsRecurring: true, RecurringFrequency: model.RecurringWeekly})
	if r.RecurringFrequency != model.RecurringWeekly {
		t.Errorf("recurring frequency dropped: %q", r.RecurringFrequency)
	}
}

func TestNormalizeBudgetNullsCategory(t *testing.T) {
	cat := "food"
	b := NormalizeBudget(model.Budget{Type: model.BudgetAnnual, Category: &cat})
	if b.Category != nil {
		t.Errorf("annual budget kept category %q", *b.Category)
	}

	c := NormalizeBudget(model.Budget{Type: model.BudgetCategory, Category: &cat})
	if c.Category == nil || *c.Category != "food" {
		t.Error("category budget lost its category")
	}
}
