package cmd

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"nbntrack/internal/cli"
	"nbntrack/internal/config"
	"nbntrack/internal/model"
	"nbntrack/internal/pipeline"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show spending overview",
	RunE:  runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	var (
		stats       model.DashboardStats
		suggestions []string
	)

	if flagCached {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		cache := openCache(cfg)
		if cache == nil {
			return fmt.Errorf("snapshot cache unavailable")
		}
		defer cache.Close()

		cached, at, err := cache.LoadStats()
		if err != nil {
			return fmt.Errorf("no cached dashboard yet; run without --cached first")
		}
		stats = cached
		fmt.Printf("  (cached snapshot from %s)\n\n", at.Local().Format("02 Jan 2006 15:04"))
	} else {
		_, client, err := newClient()
		if err != nil {
			return err
		}

		g, ctx := errgroup.WithContext(cmd.Context())
		g.Go(func() error {
			var err error
			stats, err = client.Dashboard(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			suggestions, err = client.Suggestions(ctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return err
		}
	}

	renderDashboard(stats, suggestions)
	return nil
}

func renderDashboard(stats model.DashboardStats, suggestions []string) {
	fmt.Println(cli.RenderTitle("nbntrack — spending overview"))
	fmt.Println()

	fmt.Println(cli.RenderTable(cli.Table{
		Rows: [][]string{
			{"Monthly spending", cli.FormatINR(stats.TotalMonthlySpending)},
			{"Yearly spending", cli.FormatINR(stats.TotalYearlySpending)},
			{"Yearly projection", cli.FormatINR(stats.YearlyProjection)},
			{"Subscriptions", cli.FormatINR(stats.SubscriptionSpending)},
			{"Expenses", cli.FormatINR(stats.ExpenseSpending)},
		},
	}))

	fmt.Println("  " + cli.RenderSavings(pipeline.ClassifySavings(stats.SavingsThisMonth)))
	fmt.Println()

	if len(stats.CategoryBreakdown) > 0 {
		fmt.Println("  By category")
		chart := pipeline.CategoryChart(stats.CategoryBreakdown, len(cli.BarPalette))
		fmt.Println(cli.RenderBarChart(chart, 30))

		shares := pipeline.CategoryShares(stats.CategoryBreakdown, stats.TotalMonthlySpending)
		rows := make([][]string, len(shares))
		for i, s := range shares {
			rows[i] = []string{s.Category, cli.FormatINR(s.Amount), cli.FormatPercent(s)}
		}
		fmt.Println()
		fmt.Println(cli.RenderTable(cli.Table{Headers: []string{"Category", "Amount", "Share"}, Rows: rows}))
	}

	if trends := pipeline.Trends(stats.SpendingTrends); !trends.Empty() {
		fmt.Printf("  Trend (%s … %s)\n",
			trends.Total[0].Label,
			trends.Total[len(trends.Total)-1].Label)
		fmt.Printf("    total          %s\n", cli.RenderSparkline(pipeline.SliceValues(trends.Total)))
		fmt.Printf("    subscriptions  %s\n", cli.RenderSparkline(pipeline.SliceValues(trends.Subscriptions)))
		fmt.Printf("    expenses       %s\n\n", cli.RenderSparkline(pipeline.SliceValues(trends.Expenses)))
	}

	if len(stats.UpcomingSubscriptions) > 0 || len(stats.UpcomingExpenses) > 0 {
		var rows [][]string
		for _, s := range stats.UpcomingSubscriptions {
			rows = append(rows, []string{s.Name, cli.FormatINR(s.Cost), cli.FormatDate(s.NextDueDate)})
		}
		for _, e := range stats.UpcomingExpenses {
			rows = append(rows, []string{e.Name, cli.FormatINR(e.Amount), cli.FormatDate(e.Date)})
		}
		fmt.Println(cli.RenderTable(cli.Table{
			Title:   "Due in the next 7 days",
			Headers: []string{"Name", "Amount", "When"},
			Rows:    rows,
		}))
	}

	for _, alert := range stats.BudgetAlerts {
		fmt.Println("  ⚠ " + alert)
	}
	for _, s := range suggestions {
		fmt.Println("  • " + s)
	}
}
