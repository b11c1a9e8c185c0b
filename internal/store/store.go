// Package store holds the client-side snapshot of backend state: the
// three resource collections plus the derived dashboard stats and
// suggestions. It is the single source the views read from.
package store

import (
	"sync"

	"nbntrack/internal/model"
)

// Store keeps per-slot data with a monotonic generation guard. Each
// refresh reserves a generation before its request goes out; a response
// is applied only if no newer response landed first, so late replies
// from superseded refreshes never clobber fresher data.
type Store struct {
	mu sync.Mutex

	subscriptions []model.Subscription
	expenses      []model.Expense
	budgets       []model.Budget
	stats         model.DashboardStats
	suggestions   []string

	loaded map[Slot]bool
	issued map[Slot]uint64
	applied map[Slot]uint64

	version uint64
}

// Slot names one independently refreshable piece of state.
type Slot string

const (
	SlotSubscriptions Slot = "subscriptions"
	SlotExpenses      Slot = "expenses"
	SlotBudgets       Slot = "budgets"
	SlotStats         Slot = "stats"
	SlotSuggestions   Slot = "suggestions"
)

// PrimarySlots are the slots the TUI waits on before leaving the
// loading screen. Suggestions arrive whenever they arrive.
var PrimarySlots = []Slot{SlotSubscriptions, SlotExpenses, SlotBudgets, SlotStats}

// SlotFor maps a resource kind to its collection slot.
func SlotFor(kind model.Kind) Slot {
	switch kind {
	case model.KindSubscription:
		return SlotSubscriptions
	case model.KindExpense:
		return SlotExpenses
	default:
		return SlotBudgets
	}
}

// New returns an empty store with every slot unloaded.
func New() *Store {
	return &Store{
		loaded:  make(map[Slot]bool),
		issued:  make(map[Slot]uint64),
		applied: make(map[Slot]uint64),
	}
}

// NextGeneration reserves a refresh generation for a slot. The caller
// passes it back with the response.
func (s *Store) NextGeneration(slot Slot) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued[slot]++
	return s.issued[slot]
}

// accept reports whether a response at gen should be applied, and
// records it if so. Caller holds the lock.
func (s *Store) accept(slot Slot, gen uint64) bool {
	if gen <= s.applied[slot] {
		return false
	}
	s.applied[slot] = gen
	s.loaded[slot] = true
	s.version++
	return true
}

// SetSubscriptions applies a subscriptions response. Returns false if a
// newer response already landed.
func (s *Store) SetSubscriptions(gen uint64, items []model.Subscription) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.accept(SlotSubscriptions, gen) {
		return false
	}
	s.subscriptions = items
	return true
}

// SetExpenses applies an expenses response.
func (s *Store) SetExpenses(gen uint64, items []model.Expense) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.accept(SlotExpenses, gen) {
		return false
	}
	s.expenses = items
	return true
}

// SetBudgets applies a budgets response.
func (s *Store) SetBudgets(gen uint64, items []model.Budget) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.accept(SlotBudgets, gen) {
		return false
	}
	s.budgets = items
	return true
}

// SetStats applies a dashboard stats response.
func (s *Store) SetStats(gen uint64, stats model.DashboardStats) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.accept(SlotStats, gen) {
		return false
	}
	s.stats = stats
	return true
}

// SetSuggestions applies a suggestions response.
func (s *Store) SetSuggestions(gen uint64, items []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.accept(SlotSuggestions, gen) {
		return false
	}
	s.suggestions = items
	return true
}

// Subscriptions returns the current slice and whether it has loaded.
func (s *Store) Subscriptions() ([]model.Subscription, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subscriptions, s.loaded[SlotSubscriptions]
}

// Expenses returns the current slice and whether it has loaded.
func (s *Store) Expenses() ([]model.Expense, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expenses, s.loaded[SlotExpenses]
}

// Budgets returns the current slice and whether it has loaded.
func (s *Store) Budgets() ([]model.Budget, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.budgets, s.loaded[SlotBudgets]
}

// Stats returns the current dashboard stats and whether they have loaded.
func (s *Store) Stats() (model.DashboardStats, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats, s.loaded[SlotStats]
}

// Suggestions returns the current suggestion list and whether it has loaded.
func (s *Store) Suggestions() ([]string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.suggestions, s.loaded[SlotSuggestions]
}

// Loaded reports whether a slot has ever been populated.
func (s *Store) Loaded(slot Slot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded[slot]
}

// Ready reports whether all primary slots have loaded at least once.
func (s *Store) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, slot := range PrimarySlots {
		if !s.loaded[slot] {
			return false
		}
	}
	return true
}

// Version increments on every applied write. Views compare it against
// the version they last derived from to decide whether to recompute.
func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}
