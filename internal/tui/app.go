// Package tui implements the interactive tracker dashboard.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"nbntrack/internal/config"
	"nbntrack/internal/export"
	"nbntrack/internal/model"
	"nbntrack/internal/pipeline"
	"nbntrack/internal/store"
	"nbntrack/internal/tui/components"
	"nbntrack/internal/tui/theme"
)

const (
	tabDashboard = iota
	tabSubscriptions
	tabExpenses
	tabBudgets
	tabSettings
)

// Messages.

type slotRefreshedMsg struct {
	err error
}

type mutationDoneMsg struct {
	kind model.Kind
	verb string
	err  error
}

type exportDoneMsg struct {
	path string
	err  error
}

type clearNoticeMsg struct{}

// activeForm is an open huh form plus the values it is bound to.
type activeForm struct {
	kind model.Kind
	form *huh.Form
	sub  *subscriptionValues
	exp  *expenseValues
	bud  *budgetValues
}

// App is the root bubbletea model.
type App struct {
	coord    *pipeline.Coordinator
	exporter export.Fetcher
	cfg      config.Config
	log      *slog.Logger

	width  int
	height int

	activeTab int

	// Snapshot derived from the store; recomputed whenever the store
	// version moves.
	derivedVersion uint64
	derivedOnce    bool
	subs           []model.Subscription
	exps           []model.Expense
	buds           []model.Budget
	stats          model.DashboardStats
	suggestions    []string
	shares         []pipeline.CategoryShare
	savings        pipeline.SavingsResult
	catChart       []pipeline.ChartSlice
	trends         pipeline.TrendSeries

	selected map[model.Kind]int
	filters  map[model.Kind]pipeline.Filter

	searchMode  bool
	searchInput textinput.Model

	urlEditing bool
	urlInput   textinput.Model

	sessions *EditSessions
	form     *activeForm

	settingsRow int

	busy      bool
	notice    string
	noticeErr bool
}

// NewApp wires the TUI model.
func NewApp(coord *pipeline.Coordinator, exporter export.Fetcher, cfg config.Config, log *slog.Logger) *App {
	theme.SetActive(cfg.Appearance.Theme)

	ti := textinput.New()
	ti.Placeholder = "search by name"
	ti.CharLimit = 64
	ti.Width = 28

	ui := textinput.New()
	ui.Placeholder = "http://localhost:8000"
	ui.CharLimit = 128
	ui.Width = 40

	return &App{
		coord:       coord,
		exporter:    exporter,
		cfg:         cfg,
		log:         log,
		selected:    make(map[model.Kind]int),
		filters:     make(map[model.Kind]pipeline.Filter),
		searchInput: ti,
		urlInput:    ui,
		sessions:    NewEditSessions(),
	}
}

// Init kicks off one refresh per slot so slow endpoints don't hold up
// the fast ones.
func (a *App) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(store.PrimarySlots)+1)
	for _, slot := range store.PrimarySlots {
		cmds = append(cmds, a.refreshCmd(slot))
	}
	cmds = append(cmds, a.refreshCmd(store.SlotSuggestions))
	return tea.Batch(cmds...)
}

func (a *App) refreshCmd(slots ...store.Slot) tea.Cmd {
	return func() tea.Msg {
		err := a.coord.Refresh(context.Background(), slots...)
		if err != nil {
			a.log.Warn("refresh failed", "err", err)
		}
		return slotRefreshedMsg{err: err}
	}
}

func noticeTimeout() tea.Cmd {
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg { return clearNoticeMsg{} })
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case slotRefreshedMsg:
		a.recompute()
		if msg.err != nil {
			a.setNotice("refresh failed: backend unreachable", true)
			return a, noticeTimeout()
		}
		return a, nil

	case mutationDoneMsg:
		a.busy = false
		a.recompute()
		if msg.err != nil {
			a.setNotice(fmt.Sprintf("%s failed: %v", msg.verb, msg.err), true)
		} else {
			a.setNotice(msg.verb+" saved", false)
		}
		return a, noticeTimeout()

	case exportDoneMsg:
		a.busy = false
		if msg.err != nil {
			a.setNotice(fmt.Sprintf("export failed: %v", msg.err), true)
		} else {
			a.setNotice("exported to "+msg.path, false)
		}
		return a, noticeTimeout()

	case clearNoticeMsg:
		a.notice = ""
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a *App) setNotice(text string, isErr bool) {
	a.notice = text
	a.noticeErr = isErr
}

// recompute pulls a fresh derived snapshot when the store has moved.
func (a *App) recompute() {
	st := a.coord.Store()
	v := st.Version()
	if a.derivedOnce && v == a.derivedVersion {
		return
	}
	a.derivedVersion = v
	a.derivedOnce = true

	a.subs, _ = st.Subscriptions()
	a.exps, _ = st.Expenses()
	a.buds, _ = st.Budgets()
	a.stats, _ = st.Stats()
	a.suggestions, _ = st.Suggestions()

	a.shares = pipeline.CategoryShares(a.stats.CategoryBreakdown, a.stats.TotalMonthlySpending)
	a.savings = pipeline.ClassifySavings(a.stats.SavingsThisMonth)
	a.catChart = pipeline.CategoryChart(a.stats.CategoryBreakdown, len(theme.Active.ChartPalette()))
	a.trends = pipeline.Trends(a.stats.SpendingTrends)

	a.clampSelections()
}

func (a *App) clampSelections() {
	for _, kind := range model.Kinds {
		n := a.visibleCount(kind)
		if a.selected[kind] >= n {
			a.selected[kind] = n - 1
		}
		if a.selected[kind] < 0 {
			a.selected[kind] = 0
		}
	}
}

func (a *App) visibleCount(kind model.Kind) int {
	switch kind {
	case model.KindSubscription:
		return len(pipeline.Visible(a.subs, a.filters[kind]))
	case model.KindExpense:
		return len(pipeline.Visible(a.exps, a.filters[kind]))
	default:
		return len(pipeline.Visible(a.buds, a.filters[kind]))
	}
}

// kindForTab maps list tabs to their resource kind.
func (a *App) kindForTab() (model.Kind, bool) {
	switch a.activeTab {
	case tabSubscriptions:
		return model.KindSubscription, true
	case tabExpenses:
		return model.KindExpense, true
	case tabBudgets:
		return model.KindBudget, true
	}
	return "", false
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Open form swallows everything.
	if a.form != nil {
		return a.updateForm(msg)
	}

	// Settings URL editing routes keys into its input.
	if a.urlEditing {
		switch msg.String() {
		case "esc":
			a.urlEditing = false
			a.urlInput.Blur()
			return a, nil
		case "enter":
			a.urlEditing = false
			a.urlInput.Blur()
			a.cfg.API.BaseURL = a.urlInput.Value()
			a.saveConfig()
			a.setNotice("backend URL saved; takes effect on restart", false)
			return a, noticeTimeout()
		default:
			var cmd tea.Cmd
			a.urlInput, cmd = a.urlInput.Update(msg)
			return a, cmd
		}
	}

	// Search mode routes keys into the input.
	if a.searchMode {
		switch msg.String() {
		case "esc":
			a.searchMode = false
			a.searchInput.Blur()
			return a, nil
		case "enter":
			a.searchMode = false
			a.searchInput.Blur()
			return a, nil
		default:
			var cmd tea.Cmd
			a.searchInput, cmd = a.searchInput.Update(msg)
			if kind, ok := a.kindForTab(); ok {
				f := a.filters[kind]
				f.Search = a.searchInput.Value()
				a.filters[kind] = f
				a.clampSelections()
			}
			return a, cmd
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	case "shift+tab":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil

	case "r":
		return a, a.refreshCmd(
			store.SlotSubscriptions, store.SlotExpenses, store.SlotBudgets,
			store.SlotStats, store.SlotSuggestions)

	case "E":
		return a.startExport()

	case "/":
		if kind, ok := a.kindForTab(); ok {
			a.searchMode = true
			a.searchInput.SetValue(a.filters[kind].Search)
			a.searchInput.Focus()
		}
		return a, nil

	case "f":
		if kind, ok := a.kindForTab(); ok {
			a.cycleCategoryFilter(kind)
		}
		return a, nil

	case "j", "down":
		if kind, ok := a.kindForTab(); ok {
			if a.selected[kind] < a.visibleCount(kind)-1 {
				a.selected[kind]++
			}
		} else if a.activeTab == tabSettings {
			a.settingsRow = minInt(a.settingsRow+1, settingsRows-1)
		}
		return a, nil
	case "k", "up":
		if kind, ok := a.kindForTab(); ok {
			if a.selected[kind] > 0 {
				a.selected[kind]--
			}
		} else if a.activeTab == tabSettings {
			a.settingsRow = maxInt(a.settingsRow-1, 0)
		}
		return a, nil

	case "a":
		if kind, ok := a.kindForTab(); ok {
			return a.openCreateForm(kind)
		}
		return a, nil

	case "enter":
		if kind, ok := a.kindForTab(); ok {
			return a.openEditForm(kind)
		}
		if a.activeTab == tabSettings {
			a.activateSetting()
		}
		return a, nil

	case "D":
		if kind, ok := a.kindForTab(); ok {
			return a.deleteSelected(kind)
		}
		return a, nil

	case "left", "h":
		if a.activeTab == tabSettings {
			a.cycleSetting(-1)
		}
		return a, nil
	case "right", "l":
		if a.activeTab == tabSettings {
			a.cycleSetting(1)
		}
		return a, nil
	}

	// Tab shortcuts.
	if len(msg.Runes) == 1 {
		if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
			a.activeTab = idx
		}
	}
	return a, nil
}

func (a *App) cycleCategoryFilter(kind model.Kind) {
	var cats []string
	switch kind {
	case model.KindSubscription:
		cats = model.SubscriptionCategories
	default:
		cats = model.ExpenseCategories
	}

	f := a.filters[kind]
	if f.Category == "" {
		f.Category = cats[0]
	} else {
		next := ""
		for i, c := range cats {
			if c == f.Category && i+1 < len(cats) {
				next = cats[i+1]
				break
			}
		}
		f.Category = next // wraps back to "all"
	}
	a.filters[kind] = f
	a.clampSelections()
}

// ── Mutations ───────────────────────────────────────────────────

func (a *App) openCreateForm(kind model.Kind) (tea.Model, tea.Cmd) {
	a.sessions.BeginCreate(kind)
	a.form = a.buildForm(kind, nil)
	return a, a.form.form.Init()
}

func (a *App) openEditForm(kind model.Kind) (tea.Model, tea.Cmd) {
	id, rec := a.selectedRecord(kind)
	if id == "" {
		return a, nil
	}
	if err := a.sessions.BeginEdit(kind, id); err != nil {
		return a, nil
	}
	a.form = a.buildForm(kind, rec)
	return a, a.form.form.Init()
}

// buildForm binds a fresh form; rec is nil for create sessions.
func (a *App) buildForm(kind model.Kind, rec any) *activeForm {
	f := &activeForm{kind: kind}
	switch kind {
	case model.KindSubscription:
		v := valuesFromSubscription(model.Subscription{})
		if s, ok := rec.(model.Subscription); ok {
			v = valuesFromSubscription(s)
		}
		f.sub = &v
		f.form = newSubscriptionForm(f.sub)
	case model.KindExpense:
		v := valuesFromExpense(model.Expense{})
		if e, ok := rec.(model.Expense); ok {
			v = valuesFromExpense(e)
		}
		f.exp = &v
		f.form = newExpenseForm(f.exp)
	default:
		v := valuesFromBudget(model.Budget{})
		if b, ok := rec.(model.Budget); ok {
			v = valuesFromBudget(b)
		}
		f.bud = &v
		f.form = newBudgetForm(f.bud)
	}
	return f
}

// selectedRecord resolves the highlighted row of the active list.
func (a *App) selectedRecord(kind model.Kind) (string, any) {
	idx := a.selected[kind]
	switch kind {
	case model.KindSubscription:
		items := pipeline.Visible(a.subs, a.filters[kind])
		if idx < len(items) {
			return items[idx].ID, items[idx]
		}
	case model.KindExpense:
		items := pipeline.Visible(a.exps, a.filters[kind])
		if idx < len(items) {
			return items[idx].ID, items[idx]
		}
	default:
		items := pipeline.Visible(a.buds, a.filters[kind])
		if idx < len(items) {
			return items[idx].ID, items[idx]
		}
	}
	return "", nil
}

func (a *App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		a.sessions.End(a.form.kind)
		a.form = nil
		return a, nil
	}

	form, cmd := a.form.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form.form = f
	}

	switch a.form.form.State {
	case huh.StateCompleted:
		return a.submitForm()
	case huh.StateAborted:
		a.sessions.End(a.form.kind)
		a.form = nil
		return a, nil
	}
	return a, cmd
}

// submitForm parses the form values and dispatches the write.
func (a *App) submitForm() (tea.Model, tea.Cmd) {
	f := a.form
	kind := f.kind
	editID := a.sessions.EditingID(kind)
	a.sessions.End(kind)
	a.form = nil

	verb := "create"
	if editID != "" {
		verb = "update"
	}

	var run func(context.Context) error
	switch kind {
	case model.KindSubscription:
		rec, err := f.sub.toModel()
		if err != nil {
			a.setNotice(err.Error(), true)
			return a, noticeTimeout()
		}
		if editID == "" {
			run = func(ctx context.Context) error { return a.coord.CreateSubscription(ctx, rec) }
		} else {
			run = func(ctx context.Context) error { return a.coord.UpdateSubscription(ctx, editID, rec) }
		}
	case model.KindExpense:
		rec, err := f.exp.toModel()
		if err != nil {
			a.setNotice(err.Error(), true)
			return a, noticeTimeout()
		}
		if editID == "" {
			run = func(ctx context.Context) error { return a.coord.CreateExpense(ctx, rec) }
		} else {
			run = func(ctx context.Context) error { return a.coord.UpdateExpense(ctx, editID, rec) }
		}
	default:
		rec, err := f.bud.toModel()
		if err != nil {
			a.setNotice(err.Error(), true)
			return a, noticeTimeout()
		}
		if editID == "" {
			run = func(ctx context.Context) error { return a.coord.CreateBudget(ctx, rec) }
		} else {
			run = func(ctx context.Context) error { return a.coord.UpdateBudget(ctx, editID, rec) }
		}
	}

	return a.dispatch(kind, verb, run)
}

func (a *App) deleteSelected(kind model.Kind) (tea.Model, tea.Cmd) {
	id, _ := a.selectedRecord(kind)
	if id == "" {
		return a, nil
	}
	var run func(context.Context) error
	switch kind {
	case model.KindSubscription:
		run = func(ctx context.Context) error { return a.coord.DeleteSubscription(ctx, id) }
	case model.KindExpense:
		run = func(ctx context.Context) error { return a.coord.DeleteExpense(ctx, id) }
	default:
		run = func(ctx context.Context) error { return a.coord.DeleteBudget(ctx, id) }
	}
	return a.dispatch(kind, "delete", run)
}

// dispatch runs a mutation off the update loop. The coordinator handles
// the refresh cascade before the done message comes back.
func (a *App) dispatch(kind model.Kind, verb string, run func(context.Context) error) (tea.Model, tea.Cmd) {
	if a.busy {
		a.setNotice("another change is still in flight", true)
		return a, noticeTimeout()
	}
	a.busy = true
	return a, func() tea.Msg {
		err := run(context.Background())
		return mutationDoneMsg{kind: kind, verb: verb, err: err}
	}
}

func (a *App) startExport() (tea.Model, tea.Cmd) {
	if a.busy {
		return a, nil
	}
	a.busy = true
	dir := a.cfg.Export.Dir
	return a, func() tea.Msg {
		path, err := export.Write(context.Background(), a.exporter, dir, time.Now())
		return exportDoneMsg{path: path, err: err}
	}
}

// ── View ────────────────────────────────────────────────────────

// View renders the app.
func (a *App) View() string {
	if a.width == 0 {
		return ""
	}
	// Each view waits on its own slot, so a failed stats fetch leaves
	// only the dashboard loading while the lists render normally.
	if !a.tabReady() {
		return a.viewLoading()
	}

	if a.form != nil {
		return a.viewWithChrome(a.form.form.View())
	}

	var body string
	switch a.activeTab {
	case tabDashboard:
		body = a.viewDashboard()
	case tabSubscriptions:
		body = a.viewSubscriptions()
	case tabExpenses:
		body = a.viewExpenses()
	case tabBudgets:
		body = a.viewBudgets()
	case tabSettings:
		body = a.viewSettings()
	}
	return a.viewWithChrome(body)
}

func (a *App) viewWithChrome(body string) string {
	t := theme.Active
	top := components.RenderTabBar(a.activeTab, a.width)

	if a.searchMode {
		top += "\n " + lipgloss.NewStyle().Foreground(t.TextMuted).Render("search: ") + a.searchInput.View()
	}

	status := components.RenderStatusBar(a.width, a.notice, a.noticeErr)

	bodyH := a.height - lipgloss.Height(top) - lipgloss.Height(status) - 1
	if bodyH < 1 {
		bodyH = 1
	}
	bodyStyle := lipgloss.NewStyle().Height(bodyH).MaxHeight(bodyH)

	return top + "\n" + bodyStyle.Render(body) + "\n" + status
}

// tabReady reports whether the active tab's backing slot has loaded.
func (a *App) tabReady() bool {
	st := a.coord.Store()
	switch a.activeTab {
	case tabDashboard:
		return st.Loaded(store.SlotStats)
	case tabSubscriptions:
		return st.Loaded(store.SlotSubscriptions)
	case tabExpenses:
		return st.Loaded(store.SlotExpenses)
	case tabBudgets:
		return st.Loaded(store.SlotBudgets)
	}
	return true
}

// viewLoading shows the per-slot checklist until every primary slot
// has landed.
func (a *App) viewLoading() string {
	t := theme.Active
	st := a.coord.Store()

	done := lipgloss.NewStyle().Foreground(t.Green)
	pending := lipgloss.NewStyle().Foreground(t.TextDim)

	body := lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary).Render("nbntrack") + "\n\n"
	for _, slot := range store.PrimarySlots {
		if st.Loaded(slot) {
			body += done.Render("  ✓ "+string(slot)) + "\n"
		} else {
			body += pending.Render("  … "+string(slot)) + "\n"
		}
	}
	if a.notice != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(t.Red).Render(a.notice) + "\n" +
			pending.Render("press r to retry, q to quit")
	}

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, body)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
