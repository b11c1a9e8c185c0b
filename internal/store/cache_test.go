package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"nbntrack/internal/model"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := OpenCache(filepath.Join(t.TempDir(), "snapshot.db"))
	if err != nil {
		t.Fatalf("OpenCache: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCacheRoundTrip(t *testing.T) {
	c := newTestCache(t)

	in := []model.Expense{
		{ID: "e1", Name: "Groceries", Amount: 1250, Category: "food", Date: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)},
	}
	if err := c.SaveExpenses(in); err != nil {
		t.Fatalf("SaveExpenses: %v", err)
	}

	got, at, err := c.LoadExpenses()
	if err != nil {
		t.Fatalf("LoadExpenses: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Groceries" {
		t.Errorf("loaded = %+v, want saved snapshot", got)
	}
	if at.IsZero() {
		t.Error("fetched_at not recorded")
	}
}

func TestCacheMiss(t *testing.T) {
	c := newTestCache(t)
	_, _, err := c.LoadBudgets()
	if !errors.Is(err, ErrCacheMiss) {
		t.Errorf("err = %v, want ErrCacheMiss", err)
	}
}

func TestCacheOverwrite(t *testing.T) {
	c := newTestCache(t)

	if err := c.SaveStats(model.DashboardStats{TotalMonthlySpending: 100}); err != nil {
		t.Fatalf("SaveStats: %v", err)
	}
	if err := c.SaveStats(model.DashboardStats{TotalMonthlySpending: 250}); err != nil {
		t.Fatalf("SaveStats overwrite: %v", err)
	}

	stats, _, err := c.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats: %v", err)
	}
	if stats.TotalMonthlySpending != 250 {
		t.Errorf("total_monthly_spending = %v, want 250", stats.TotalMonthlySpending)
	}
}
