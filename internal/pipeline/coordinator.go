package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"nbntrack/internal/model"
	"nbntrack/internal/store"
)

// Backend is the slice of the API client the coordinator needs.
type Backend interface {
	ListSubscriptions(ctx context.Context) ([]model.Subscription, error)
	CreateSubscription(ctx context.Context, s model.Subscription) (model.Subscription, error)
	UpdateSubscription(ctx context.Context, id string, s model.Subscription) (model.Subscription, error)
	DeleteSubscription(ctx context.Context, id string) error

	ListExpenses(ctx context.Context) ([]model.Expense, error)
	CreateExpense(ctx context.Context, e model.Expense) (model.Expense, error)
	UpdateExpense(ctx context.Context, id string, e model.Expense) (model.Expense, error)
	DeleteExpense(ctx context.Context, id string) error

	ListBudgets(ctx context.Context) ([]model.Budget, error)
	CreateBudget(ctx context.Context, b model.Budget) (model.Budget, error)
	UpdateBudget(ctx context.Context, id string, b model.Budget) (model.Budget, error)
	DeleteBudget(ctx context.Context, id string) error

	Dashboard(ctx context.Context) (model.DashboardStats, error)
	Suggestions(ctx context.Context) ([]string, error)
}

// Coordinator runs every mutation as write-then-refresh: the record is
// written first, and only on success are the affected slots re-fetched
// (the mutated collection, the dashboard stats, and the suggestions —
// each exactly once). Generations are reserved before the fetches go
// out so late responses from superseded refreshes are discarded.
type Coordinator struct {
	api   Backend
	store *store.Store
	cache *store.Cache // nil disables write-through caching
	log   *slog.Logger
}

// NewCoordinator wires the coordinator. cache may be nil.
func NewCoordinator(api Backend, st *store.Store, cache *store.Cache, log *slog.Logger) *Coordinator {
	return &Coordinator{api: api, store: st, cache: cache, log: log}
}

// Store exposes the backing store for views.
func (c *Coordinator) Store() *store.Store { return c.store }

// ── Subscriptions ───────────────────────────────────────────────

func (c *Coordinator) CreateSubscription(ctx context.Context, s model.Subscription) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if _, err := c.api.CreateSubscription(ctx, s); err != nil {
		return fmt.Errorf("creating subscription: %w", err)
	}
	return c.refreshAfterWrite(ctx, store.SlotSubscriptions)
}

func (c *Coordinator) UpdateSubscription(ctx context.Context, id string, s model.Subscription) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if _, err := c.api.UpdateSubscription(ctx, id, s); err != nil {
		return fmt.Errorf("updating subscription: %w", err)
	}
	return c.refreshAfterWrite(ctx, store.SlotSubscriptions)
}

func (c *Coordinator) DeleteSubscription(ctx context.Context, id string) error {
	if err := c.api.DeleteSubscription(ctx, id); err != nil {
		return fmt.Errorf("deleting subscription: %w", err)
	}
	return c.refreshAfterWrite(ctx, store.SlotSubscriptions)
}

// ── Expenses ────────────────────────────────────────────────────

func (c *Coordinator) CreateExpense(ctx context.Context, e model.Expense) error {
	e = NormalizeExpense(e)
	if err := e.Validate(); err != nil {
		return err
	}
	if _, err := c.api.CreateExpense(ctx, e); err != nil {
		return fmt.Errorf("creating expense: %w", err)
	}
	return c.refreshAfterWrite(ctx, store.SlotExpenses)
}

func (c *Coordinator) UpdateExpense(ctx context.Context, id string, e model.Expense) error {
	e = NormalizeExpense(e)
	if err := e.Validate(); err != nil {
		return err
	}
	if _, err := c.api.UpdateExpense(ctx, id, e); err != nil {
		return fmt.Errorf("updating expense: %w", err)
	}
	return c.refreshAfterWrite(ctx, store.SlotExpenses)
}

func (c *Coordinator) DeleteExpense(ctx context.Context, id string) error {
	if err := c.api.DeleteExpense(ctx, id); err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}
	return c.refreshAfterWrite(ctx, store.SlotExpenses)
}

// ── Budgets ─────────────────────────────────────────────────────

func (c *Coordinator) CreateBudget(ctx context.Context, b model.Budget) error {
	b = NormalizeBudget(b)
	if err := b.Validate(); err != nil {
		return err
	}
	if _, err := c.api.CreateBudget(ctx, b); err != nil {
		return fmt.Errorf("creating budget: %w", err)
	}
	return c.refreshAfterWrite(ctx, store.SlotBudgets)
}

func (c *Coordinator) UpdateBudget(ctx context.Context, id string, b model.Budget) error {
	b = NormalizeBudget(b)
	if err := b.Validate(); err != nil {
		return err
	}
	if _, err := c.api.UpdateBudget(ctx, id, b); err != nil {
		return fmt.Errorf("updating budget: %w", err)
	}
	return c.refreshAfterWrite(ctx, store.SlotBudgets)
}

func (c *Coordinator) DeleteBudget(ctx context.Context, id string) error {
	if err := c.api.DeleteBudget(ctx, id); err != nil {
		return fmt.Errorf("deleting budget: %w", err)
	}
	return c.refreshAfterWrite(ctx, store.SlotBudgets)
}

// ── Refresh ─────────────────────────────────────────────────────

// refreshAfterWrite re-fetches the mutated collection, the stats, and
// the suggestions concurrently. Store contents survive a failed fetch;
// the error is returned so the caller can surface it.
func (c *Coordinator) refreshAfterWrite(ctx context.Context, collection store.Slot) error {
	return c.Refresh(ctx, collection, store.SlotStats, store.SlotSuggestions)
}

// RefreshAll re-fetches every slot.
func (c *Coordinator) RefreshAll(ctx context.Context) error {
	return c.Refresh(ctx,
		store.SlotSubscriptions, store.SlotExpenses, store.SlotBudgets,
		store.SlotStats, store.SlotSuggestions)
}

// Refresh re-fetches the given slots concurrently. Generations are
// reserved up front, before any request is in flight.
func (c *Coordinator) Refresh(ctx context.Context, slots ...store.Slot) error {
	gens := make(map[store.Slot]uint64, len(slots))
	for _, slot := range slots {
		gens[slot] = c.store.NextGeneration(slot)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, slot := range slots {
		g.Go(func() error {
			if err := c.refreshSlot(gctx, slot, gens[slot]); err != nil {
				return fmt.Errorf("refreshing %s: %w", slot, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func (c *Coordinator) refreshSlot(ctx context.Context, slot store.Slot, gen uint64) error {
	switch slot {
	case store.SlotSubscriptions:
		items, err := c.api.ListSubscriptions(ctx)
		if err != nil {
			return err
		}
		if c.store.SetSubscriptions(gen, items) {
			c.writeThrough(func() error { return c.cache.SaveSubscriptions(items) })
		}
	case store.SlotExpenses:
		items, err := c.api.ListExpenses(ctx)
		if err != nil {
			return err
		}
		if c.store.SetExpenses(gen, items) {
			c.writeThrough(func() error { return c.cache.SaveExpenses(items) })
		}
	case store.SlotBudgets:
		items, err := c.api.ListBudgets(ctx)
		if err != nil {
			return err
		}
		if c.store.SetBudgets(gen, items) {
			c.writeThrough(func() error { return c.cache.SaveBudgets(items) })
		}
	case store.SlotStats:
		stats, err := c.api.Dashboard(ctx)
		if err != nil {
			return err
		}
		if c.store.SetStats(gen, stats) {
			c.writeThrough(func() error { return c.cache.SaveStats(stats) })
		}
	case store.SlotSuggestions:
		items, err := c.api.Suggestions(ctx)
		if err != nil {
			return err
		}
		c.store.SetSuggestions(gen, items)
	}
	return nil
}

// writeThrough persists an applied snapshot; cache failures are logged
// and never surfaced, the cache is best-effort.
func (c *Coordinator) writeThrough(save func() error) {
	if c.cache == nil {
		return
	}
	if err := save(); err != nil {
		c.log.Warn("cache write failed", "err", err)
	}
}
