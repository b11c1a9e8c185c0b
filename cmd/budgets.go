package cmd

import (
	"fmt"

	"nbntrack/internal/cli"
	"nbntrack/internal/config"
	"nbntrack/internal/model"
	"nbntrack/internal/pipeline"

	"github.com/spf13/cobra"
)

var budgetsCmd = &cobra.Command{
	Use:   "budgets",
	Short: "List budgets",
	RunE:  runBudgets,
}

func init() {
	rootCmd.AddCommand(budgetsCmd)
}

func runBudgets(cmd *cobra.Command, _ []string) error {
	var items []model.Budget

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

		cached, at, err := cache.LoadBudgets()
		if err != nil {
			return fmt.Errorf("no cached budgets yet; run without --cached first")
		}
		items = cached
		fmt.Printf("  (cached snapshot from %s)\n", at.Local().Format("02 Jan 2006 15:04"))
	} else {
		_, client, err := newClient()
		if err != nil {
			return err
		}
		items, err = client.ListBudgets(cmd.Context())
		if err != nil {
			return err
		}
	}

	visible := pipeline.Visible(items, listFilter())

	rows := make([][]string, len(visible))
	for i, b := range visible {
		category := "—"
		if b.Category != nil {
			category = *b.Category
		}
		period := "—"
		if b.Period != "" {
			period = string(b.Period)
		}
		rows[i] = []string{string(b.Type), cli.FormatINR(b.Amount), category, period}
	}

	fmt.Println(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Budgets (%d)", len(visible)),
		Headers: []string{"Type", "Amount", "Category", "Period"},
		Rows:    rows,
	}))
	fmt.Println("  (saving a budget replaces any existing budget of the same type)")
	return nil
}
