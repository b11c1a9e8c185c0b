// Package model defines the resource entities and derived-stats types
// exchanged with the nbntrack backend.
package model

import (
	"errors"
	"time"
)

// Kind identifies one of the three mutable resource collections.
type Kind string

const (
	KindSubscription Kind = "subscriptions"
	KindExpense      Kind = "expenses"
	KindBudget       Kind = "budgets"
)

// Kinds lists all collection kinds in display order.
var Kinds = []Kind{KindSubscription, KindExpense, KindBudget}

// BillingFrequency is how often a subscription renews.
type BillingFrequency string

const (
	BillingMonthly BillingFrequency = "monthly"
	BillingYearly  BillingFrequency = "yearly"
)

// RecurringFrequency is the cadence of a recurring expense.
type RecurringFrequency string

const (
	RecurringWeekly  RecurringFrequency = "weekly"
	RecurringMonthly RecurringFrequency = "monthly"
	RecurringYearly  RecurringFrequency = "yearly"
)

// BudgetType distinguishes a single annual cap from per-category caps.
type BudgetType string

const (
	BudgetAnnual   BudgetType = "annual"
	BudgetCategory BudgetType = "category"
)

// BudgetPeriod is the window a budget amount applies to.
type BudgetPeriod string

const (
	PeriodMonthly BudgetPeriod = "monthly"
	PeriodYearly  BudgetPeriod = "yearly"
)

// SubscriptionCategories are the canonical subscription category values.
// Filtering matches these case-sensitively; no casing normalization is applied.
var SubscriptionCategories = []string{
	"streaming", "software", "utilities", "fitness",
	"news", "productivity", "entertainment", "other",
}

// ExpenseCategories are the canonical expense category values
// (a distinct set from subscription categories).
var ExpenseCategories = []string{
	"food", "transportation", "entertainment", "utilities",
	"shopping", "healthcare", "education", "other",
}

// Subscription is a recurring service charge. The id is server-assigned.
type Subscription struct {
	ID               string           `json:"id,omitempty"`
	Name             string           `json:"name"`
	Cost             float64          `json:"cost"`
	BillingFrequency BillingFrequency `json:"billing_frequency"`
	NextDueDate      time.Time        `json:"next_due_date"`
	Category         string           `json:"category"`
	IsActive         bool             `json:"is_active,omitempty"`
	CreatedAt        time.Time        `json:"created_at,omitempty"`
}

// Expense is a one-off or recurring spend record.
type Expense struct {
	ID                 string             `json:"id,omitempty"`
	Name               string             `json:"name"`
	Amount             float64            `json:"amount"`
	Category           string             `json:"category"`
	Tags               []string           `json:"tags"`
	Notes              *string            `json:"notes,omitempty"`
	Date               time.Time          `json:"date"`
	IsRecurring        bool               `json:"is_recurring"`
	RecurringFrequency RecurringFrequency `json:"recurring_frequency,omitempty"`
	CreatedAt          time.Time          `json:"created_at,omitempty"`
}

// Budget caps spending either annually or per category.
// Category is set iff Type is BudgetCategory.
type Budget struct {
	ID        string       `json:"id,omitempty"`
	Type      BudgetType   `json:"type"`
	Amount    float64      `json:"amount"`
	Category  *string      `json:"category"`
	Period    BudgetPeriod `json:"period,omitempty"`
	CreatedAt time.Time    `json:"created_at,omitempty"`
}

var (
	ErrEmptyName      = errors.New("name must not be empty")
	ErrNonPositive    = errors.New("amount must be greater than zero")
	ErrMissingDate    = errors.New("date must be set")
	ErrCategoryNeeded = errors.New("category budget requires a category")
)

// Validate checks the subscription invariants (non-empty name, cost > 0,
// valid due date).
func (s Subscription) Validate() error {
	if s.Name == "" {
		return ErrEmptyName
	}
	if s.Cost <= 0 {
		return ErrNonPositive
	}
	if s.NextDueDate.IsZero() {
		return ErrMissingDate
	}
	return nil
}

// Validate checks the expense invariants.
func (e Expense) Validate() error {
	if e.Name == "" {
		return ErrEmptyName
	}
	if e.Amount <= 0 {
		return ErrNonPositive
	}
	if e.Date.IsZero() {
		return ErrMissingDate
	}
	return nil
}

// Validate checks the budget invariants.
func (b Budget) Validate() error {
	if b.Amount <= 0 {
		return ErrNonPositive
	}
	if b.Type == BudgetCategory && (b.Category == nil || *b.Category == "") {
		return ErrCategoryNeeded
	}
	return nil
}

// FilterName and FilterCategory satisfy pipeline.Filterable.

func (s Subscription) FilterName() string     { return s.Name }
func (s Subscription) FilterCategory() string { return s.Category }

func (e Expense) FilterName() string     { return e.Name }
func (e Expense) FilterCategory() string { return e.Category }

// Budgets are filterable by category only; the "name" shown in lists is
// the budget type.
func (b Budget) FilterName() string { return string(b.Type) }
func (b Budget) FilterCategory() string {
	if b.Category == nil {
		return ""
	}
	return *b.Category
}
