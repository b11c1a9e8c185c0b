package store

import (
	"testing"

	"nbntrack/internal/model"
)

func TestReadyRequiresPrimarySlots(t *testing.T) {
	s := New()
	if s.Ready() {
		t.Fatal("empty store reports ready")
	}

	s.SetSubscriptions(s.NextGeneration(SlotSubscriptions), nil)
	s.SetExpenses(s.NextGeneration(SlotExpenses), nil)
	s.SetBudgets(s.NextGeneration(SlotBudgets), nil)
	if s.Ready() {
		t.Fatal("ready before stats loaded")
	}

	s.SetStats(s.NextGeneration(SlotStats), model.DashboardStats{})
	if !s.Ready() {
		t.Fatal("not ready after all primary slots loaded")
	}
	if s.Loaded(SlotSuggestions) {
		t.Error("suggestions slot should stay unloaded")
	}
}

func TestStaleGenerationDiscarded(t *testing.T) {
	s := New()
	g1 := s.NextGeneration(SlotExpenses)
	g2 := s.NextGeneration(SlotExpenses)

	// Newer refresh lands first.
	if !s.SetExpenses(g2, []model.Expense{{ID: "new"}}) {
		t.Fatal("fresh response rejected")
	}
	// Stale response arrives late and must be dropped.
	if s.SetExpenses(g1, []model.Expense{{ID: "old"}}) {
		t.Fatal("stale response applied")
	}

	got, _ := s.Expenses()
	if len(got) != 1 || got[0].ID != "new" {
		t.Errorf("expenses = %+v, want the newer snapshot", got)
	}
}

func TestInOrderGenerationsApply(t *testing.T) {
	s := New()
	g1 := s.NextGeneration(SlotBudgets)
	g2 := s.NextGeneration(SlotBudgets)

	if !s.SetBudgets(g1, []model.Budget{{ID: "a"}}) {
		t.Fatal("first response rejected")
	}
	if !s.SetBudgets(g2, []model.Budget{{ID: "b"}}) {
		t.Fatal("second response rejected")
	}

	got, _ := s.Budgets()
	if got[0].ID != "b" {
		t.Errorf("budgets = %+v, want second snapshot", got)
	}
}

func TestVersionAdvancesOnApply(t *testing.T) {
	s := New()
	v0 := s.Version()

	g1 := s.NextGeneration(SlotStats)
	g2 := s.NextGeneration(SlotStats)
	s.SetStats(g2, model.DashboardStats{TotalMonthlySpending: 100})

	v1 := s.Version()
	if v1 == v0 {
		t.Error("version unchanged after applied write")
	}

	// Discarded write must not bump the version.
	s.SetStats(g1, model.DashboardStats{TotalMonthlySpending: 999})
	if s.Version() != v1 {
		t.Error("version changed after discarded write")
	}

	stats, _ := s.Stats()
	if stats.TotalMonthlySpending != 100 {
		t.Errorf("stats = %v, want 100", stats.TotalMonthlySpending)
	}
}

func TestSlotFor(t *testing.T) {
	cases := []struct {
		kind model.Kind
		want Slot
	}{
		{model.KindSubscription, SlotSubscriptions},
		{model.KindExpense, SlotExpenses},
		{model.KindBudget, SlotBudgets},
	}
	for _, tc := range cases {
		if got := SlotFor(tc.kind); got != tc.want {
			t.Errorf("SlotFor(%s) = %s, want %s", tc.kind, got, tc.want)
		}
	}
}
