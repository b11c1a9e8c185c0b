package cmd

import (
	"fmt"

	"nbntrack/internal/cli"
	"nbntrack/internal/config"
	"nbntrack/internal/model"
	"nbntrack/internal/pipeline"

	"github.com/spf13/cobra"
)

var subscriptionsCmd = &cobra.Command{
	Use:     "subscriptions",
	Aliases: []string{"subs"},
	Short:   "List subscriptions",
	RunE:    runSubscriptions,
}

func init() {
	rootCmd.AddCommand(subscriptionsCmd)
}

func runSubscriptions(cmd *cobra.Command, _ []string) error {
	var items []model.Subscription

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

		cached, at, err := cache.LoadSubscriptions()
		if err != nil {
			return fmt.Errorf("no cached subscriptions yet; run without --cached first")
		}
		items = cached
		fmt.Printf("  (cached snapshot from %s)\n", at.Local().Format("02 Jan 2006 15:04"))
	} else {
		_, client, err := newClient()
		if err != nil {
			return err
		}
		items, err = client.ListSubscriptions(cmd.Context())
		if err != nil {
			return err
		}
	}

	visible := pipeline.Visible(items, listFilter())

	rows := make([][]string, len(visible))
	var monthly float64
	for i, s := range visible {
		rows[i] = []string{
			s.Name,
			cli.FormatINR(s.Cost),
			cli.FormatFrequency(s.BillingFrequency),
			cli.FormatDate(s.NextDueDate),
			s.Category,
		}
		if s.BillingFrequency == model.BillingYearly {
			monthly += s.Cost / 12
		} else {
			monthly += s.Cost
		}
	}

	fmt.Println(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Subscriptions (%d)", len(visible)),
		Headers: []string{"Name", "Cost", "Billing", "Next due", "Category"},
		Rows:    rows,
	}))
	fmt.Printf("  Monthly equivalent: %s\n", cli.FormatINR(monthly))
	return nil
}
