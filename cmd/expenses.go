package cmd

import (
	"fmt"

	"nbntrack/internal/cli"
	"nbntrack/internal/config"
	"nbntrack/internal/model"
	"nbntrack/internal/pipeline"

	"github.com/spf13/cobra"
)

var expensesCmd = &cobra.Command{
	Use:   "expenses",
	Short: "List expenses",
	RunE:  runExpenses,
}

func init() {
	rootCmd.AddCommand(expensesCmd)
}

func runExpenses(cmd *cobra.Command, _ []string) error {
	var items []model.Expense

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

		cached, at, err := cache.LoadExpenses()
		if err != nil {
			return fmt.Errorf("no cached expenses yet; run without --cached first")
		}
		items = cached
		fmt.Printf("  (cached snapshot from %s)\n", at.Local().Format("02 Jan 2006 15:04"))
	} else {
		_, client, err := newClient()
		if err != nil {
			return err
		}
		items, err = client.ListExpenses(cmd.Context())
		if err != nil {
			return err
		}
	}

	visible := pipeline.Visible(items, listFilter())

	rows := make([][]string, len(visible))
	var total float64
	for i, e := range visible {
		recurring := "—"
		if e.IsRecurring {
			recurring = string(e.RecurringFrequency)
		}
		rows[i] = []string{
			e.Name,
			cli.FormatINR(e.Amount),
			e.Category,
			cli.FormatTags(e.Tags),
			cli.FormatDate(e.Date),
			recurring,
		}
		total += e.Amount
	}

	fmt.Println(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Expenses (%d)", len(visible)),
		Headers: []string{"Name", "Amount", "Category", "Tags", "Date", "Recurring"},
		Rows:    rows,
	}))
	fmt.Printf("  Total: %s\n", cli.FormatINR(total))
	return nil
}
