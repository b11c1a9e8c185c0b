package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"

	"nbntrack/internal/log"
	"nbntrack/internal/model"
	"nbntrack/internal/store"
)

// fakeBackend counts calls and serves canned data.
type fakeBackend struct {
	mu     sync.Mutex
	calls  map[string]int
	failOn string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{calls: map[string]int{}}
}

func (f *fakeBackend) record(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
	if f.failOn == name {
		return errors.New("injected failure")
	}
	return nil
}

func (f *fakeBackend) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeBackend) ListSubscriptions(ctx context.Context) ([]model.Subscription, error) {
	return nil, f.record("list_subscriptions")
}
func (f *fakeBackend) CreateSubscription(ctx context.Context, s model.Subscription) (model.Subscription, error) {
	return s, f.record("create_subscription")
}
func (f *fakeBackend) UpdateSubscription(ctx context.Context, id string, s model.Subscription) (model.Subscription, error) {
	return s, f.record("update_subscription")
}
func (f *fakeBackend) DeleteSubscription(ctx context.Context, id string) error {
	return f.record("delete_subscription")
}
func (f *fakeBackend) ListExpenses(ctx context.Context) ([]model.Expense, error) {
	return nil, f.record("list_expenses")
}
func (f *fakeBackend) CreateExpense(ctx context.Context, e model.Expense) (model.Expense, error) {
	return e, f.record("create_expense")
}
func (f *fakeBackend) UpdateExpense(ctx context.Context, id string, e model.Expense) (model.Expense, error) {
	return e, f.record("update_expense")
}
func (f *fakeBackend) DeleteExpense(ctx context.Context, id string) error {
	return f.record("delete_expense")
}
func (f *fakeBackend) ListBudgets(ctx context.Context) ([]model.Budget, error) {
	return nil, f.record("list_budgets")
}
func (f *fakeBackend) CreateBudget(ctx context.Context, b model.Budget) (model.Budget, error) {
	return b, f.record("create_budget")
}
func (f *fakeBackend) UpdateBudget(ctx context.Context, id string, b model.Budget) (model.Budget, error) {
	return b, f.record("update_budget")
}
func (f *fakeBackend) DeleteBudget(ctx context.Context, id string) error {
	return f.record("delete_budget")
}
func (f *fakeBackend) Dashboard(ctx context.Context) (model.DashboardStats, error) {
	return model.DashboardStats{}, f.record("dashboard")
}
func (f *fakeBackend) Suggestions(ctx context.Context) ([]string, error) {
	return nil, f.record("suggestions")
}

func newTestCoordinator(f *fakeBackend) *Coordinator {
	return NewCoordinator(f, store.New(), nil, log.Discard("pipeline-test"))
}

func validExpense() model.Expense {
	e := model.Expense{Name: "Groceries", Amount: 1250, Category: "food"}
	e.Date, _ = ParseDate("2026-08-20")
	return e
}

func TestCreateExpenseCascade(t *testing.T) {
	f := newFakeBackend()
	c := newTestCoordinator(f)

	if err := c.CreateExpense(context.Background(), validExpense()); err != nil {
		t.Fatalf("CreateExpense: %v", err)
	}

	// Write once, then each affected slot refreshed exactly once.
	for name, want := range map[string]int{
		"create_expense": 1,
		"list_expenses":  1,
		"dashboard":      1,
		"suggestions":    1,
		// Untouched collections stay untouched.
		"list_subscriptions": 0,
		"list_budgets":       0,
	} {
		if got := f.count(name); got != want {
			t.Errorf("%s called %d times, want %d", name, got, want)
		}
	}
}

func TestWriteFailureSkipsRefresh(t *testing.T) {
	f := newFakeBackend()
	f.failOn = "delete_subscription"
	c := newTestCoordinator(f)

	if err := c.DeleteSubscription(context.Background(), "s1"); err == nil {
		t.Fatal("expected delete error")
	}
	if got := f.count("list_subscriptions"); got != 0 {
		t.Errorf("refresh ran %d times after failed write, want 0", got)
	}
	if got := f.count("dashboard"); got != 0 {
		t.Errorf("stats refresh ran %d times after failed write, want 0", got)
	}
}

func TestValidationFailureSkipsWrite(t *testing.T) {
	f := newFakeBackend()
	c := newTestCoordinator(f)

	err := c.CreateSubscription(context.Background(), model.Subscription{Name: ""})
	if !errors.Is(err, model.ErrEmptyName) {
		t.Fatalf("err = %v, want ErrEmptyName", err)
	}
	if got := f.count("create_subscription"); got != 0 {
		t.Errorf("invalid record written %d times", got)
	}
}

func TestRefreshFailureKeepsStore(t *testing.T) {
	f := newFakeBackend()
	c := newTestCoordinator(f)
	st := c.Store()

	// Seed the store with a known snapshot.
	st.SetStats(st.NextGeneration(store.SlotStats), model.DashboardStats{TotalMonthlySpending: 500})

	f.failOn = "dashboard"
	err := c.UpdateBudget(context.Background(), "b1", model.Budget{Type: model.BudgetAnnual, Amount: 100000})
	if err == nil {
		t.Fatal("expected refresh error to surface")
	}

	stats, ok := st.Stats()
	if !ok || stats.TotalMonthlySpending != 500 {
		t.Errorf("stats = %+v ok=%v, want previous snapshot intact", stats, ok)
	}
}

func TestMutationsNormalizeBeforeWrite(t *testing.T) {
	f := newFakeBackend()
	c := newTestCoordinator(f)

	cat := "food"
	b := model.Budget{Type: model.BudgetAnnual, Amount: 50000, Category: &cat}
	if err := c.CreateBudget(context.Background(), b); err != nil {
		t.Fatalf("CreateBudget: %v", err)
	}
	// An annual budget with a stray category must not fail validation
	// (the category is nulled during normalization).
	if got := f.count("create_budget"); got != 1 {
		t.Errorf("create_budget called %d times, want 1", got)
	}
}

func TestRefreshAll(t *testing.T) {
	f := newFakeBackend()
	c := newTestCoordinator(f)

	if err := c.RefreshAll(context.Background()); err != nil {
		t.Fatalf("RefreshAll: %v", err)
	}
	if !c.Store().Ready() {
		t.Error("store not ready after RefreshAll")
	}
	for _, name := range []string{"list_subscriptions", "list_expenses", "list_budgets", "dashboard", "suggestions"} {
		if got := f.count(name); got != 1 {
			t.Errorf("%s called %d times, want 1", name, got)
		}
	}
}

func TestRefreshAllStatsFailureLoadsCollections(t *testing.T) {
	f := newFakeBackend()
	f.failOn = "dashboard"
	c := newTestCoordinator(f)
	st := c.Store()

	if err := c.RefreshAll(context.Background()); err == nil {
		t.Fatal("expected stats fetch error to surface")
	}

	// A failed stats fetch leaves only its own slot unloaded; the three
	// collections still land and their views can render.
	if st.Loaded(store.SlotStats) {
		t.Error("stats slot loaded despite failed fetch")
	}
	for _, slot := range []store.Slot{store.SlotSubscriptions, store.SlotExpenses, store.SlotBudgets} {
		if !st.Loaded(slot) {
			t.Errorf("%s not loaded after RefreshAll", slot)
		}
	}
	if st.Ready() {
		t.Error("store reported ready with the stats slot unloaded")
	}
}
