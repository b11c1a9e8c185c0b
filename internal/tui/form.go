package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"nbntrack/internal/model"
	"nbntrack/internal/pipeline"
)

// Form field values are kept as strings while a session is open and
// parsed into model types only on save.

type subscriptionValues struct {
	name      string
	cost      string
	frequency string
	dueDate   string
	category  string
}

func valuesFromSubscription(s model.Subscription) subscriptionValues {
	v := subscriptionValues{
		name:      s.Name,
		frequency: string(s.BillingFrequency),
		category:  s.Category,
	}
	if s.Cost > 0 {
		v.cost = strconv.FormatFloat(s.Cost, 'f', -1, 64)
	}
	if !s.NextDueDate.IsZero() {
		v.dueDate = s.NextDueDate.Format("2006-01-02")
	}
	if v.frequency == "" {
		v.frequency = string(model.BillingMonthly)
	}
	if v.category == "" {
		v.category = "other"
	}
	return v
}

func (v *subscriptionValues) toModel() (model.Subscription, error) {
	cost, err := pipeline.ParseAmount(v.cost)
	if err != nil {
		return model.Subscription{}, err
	}
	due, err := pipeline.ParseDate(v.dueDate)
	if err != nil {
		return model.Subscription{}, err
	}
	s := model.Subscription{
		Name:             strings.TrimSpace(v.name),
		Cost:             cost,
		BillingFrequency: model.BillingFrequency(v.frequency),
		NextDueDate:      due,
		Category:         v.category,
		IsActive:         true,
	}
	return s, s.Validate()
}

func newSubscriptionForm(v *subscriptionValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&v.name),
			huh.NewInput().Title("Cost (₹)").Value(&v.cost),
			huh.NewSelect[string]().
				Title("Billing").
				Options(huh.NewOptions(string(model.BillingMonthly), string(model.BillingYearly))...).
				Value(&v.frequency),
			huh.NewInput().Title("Next due (YYYY-MM-DD)").Value(&v.dueDate),
			huh.NewSelect[string]().
				Title("Category").
				Options(huh.NewOptions(model.SubscriptionCategories...)...).
				Value(&v.category),
		),
	)
}

type expenseValues struct {
	name      string
	amount    string
	category  string
	tags      string
	notes     string
	date      string
	recurring bool
	frequency string
}

func valuesFromExpense(e model.Expense) expenseValues {
	v := expenseValues{
		name:      e.Name,
		category:  e.Category,
		tags:      strings.Join(e.Tags, ", "),
		recurring: e.IsRecurring,
		frequency: string(e.RecurringFrequency),
	}
	if e.Amount > 0 {
		v.amount = strconv.FormatFloat(e.Amount, 'f', -1, 64)
	}
	if e.Notes != nil {
		v.notes = *e.Notes
	}
	if !e.Date.IsZero() {
		v.date = e.Date.Format("2006-01-02")
	} else {
		v.date = time.Now().Format("2006-01-02")
	}
	if v.category == "" {
		v.category = "other"
	}
	if v.frequency == "" {
		v.frequency = string(model.RecurringMonthly)
	}
	return v
}

func (v *expenseValues) toModel() (model.Expense, error) {
	amount, err := pipeline.ParseAmount(v.amount)
	if err != nil {
		return model.Expense{}, err
	}
	date, err := pipeline.ParseDate(v.date)
	if err != nil {
		return model.Expense{}, err
	}
	e := model.Expense{
		Name:        strings.TrimSpace(v.name),
		Amount:      amount,
		Category:    v.category,
		Tags:        pipeline.NormalizeTags(v.tags),
		Date:        date,
		IsRecurring: v.recurring,
	}
	if notes := strings.TrimSpace(v.notes); notes != "" {
		e.Notes = &notes
	}
	if v.recurring {
		e.RecurringFrequency = model.RecurringFrequency(v.frequency)
	}
	e = pipeline.NormalizeExpense(e)
	return e, e.Validate()
}

func newExpenseForm(v *expenseValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&v.name),
			huh.NewInput().Title("Amount (₹)").Value(&v.amount),
			huh.NewSelect[string]().
				Title("Category").
				Options(huh.NewOptions(model.ExpenseCategories...)...).
				Value(&v.category),
			huh.NewInput().Title("Tags (comma-separated)").Value(&v.tags),
			huh.NewInput().Title("Notes").Value(&v.notes),
			huh.NewInput().Title("Date (YYYY-MM-DD)").Value(&v.date),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Recurring?").Value(&v.recurring),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(huh.NewOptions(
					string(model.RecurringWeekly),
					string(model.RecurringMonthly),
					string(model.RecurringYearly))...).
				Value(&v.frequency),
		),
	)
}

type budgetValues struct {
	budgetType string
	amount     string
	category   string
	period     string
}

func valuesFromBudget(b model.Budget) budgetValues {
	v := budgetValues{
		budgetType: string(b.Type),
		period:     string(b.Period),
	}
	if b.Amount > 0 {
		v.amount = strconv.FormatFloat(b.Amount, 'f', -1, 64)
	}
	if b.Category != nil {
		v.category = *b.Category
	}
	if v.budgetType == "" {
		v.budgetType = string(model.BudgetAnnual)
	}
	if v.period == "" {
		v.period = string(model.PeriodMonthly)
	}
	if v.category == "" {
		v.category = "other"
	}
	return v
}

func (v *budgetValues) toModel() (model.Budget, error) {
	amount, err := pipeline.ParseAmount(v.amount)
	if err != nil {
		return model.Budget{}, err
	}
	b := model.Budget{
		Type:   model.BudgetType(v.budgetType),
		Amount: amount,
		Period: model.BudgetPeriod(v.period),
	}
	if b.Type == model.BudgetCategory {
		cat := v.category
		b.Category = &cat
	}
	b = pipeline.NormalizeBudget(b)
	return b, b.Validate()
}

func newBudgetForm(v *budgetValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Type").
				Options(huh.NewOptions(string(model.BudgetAnnual), string(model.BudgetCategory))...).
				Value(&v.budgetType),
			huh.NewInput().Title("Amount (₹)").Value(&v.amount),
			huh.NewSelect[string]().
				Title("Category (category budgets only)").
				Options(huh.NewOptions(model.ExpenseCategories...)...).
				Value(&v.category),
			huh.NewSelect[string]().
				Title("Period").
				Options(huh.NewOptions(string(model.PeriodMonthly), string(model.PeriodYearly))...).
				Value(&v.period),
		),
	)
}
