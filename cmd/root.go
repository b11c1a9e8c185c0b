package cmd

import (
	"os"

	"nbntrack/internal/api"
	"nbntrack/internal/config"
	"nbntrack/internal/log"
	"nbntrack/internal/pipeline"
	"nbntrack/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagCached   bool
	flagSearch   string
	flagCategory string
)

var rootCmd = &cobra.Command{
	Use:   "nbntrack",
	Short: "Personal finance tracker",
	Long:  "Track subscriptions, expenses, and budgets against the nbntrack backend.",
	RunE:  runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagCached, "cached", false, "Render from the local snapshot cache without contacting the backend")
	rootCmd.PersistentFlags().StringVarP(&flagSearch, "search", "s", "", "Filter lists by name (case-insensitive substring)")
	rootCmd.PersistentFlags().StringVarP(&flagCategory, "category", "c", "", "Filter lists by exact category")
}

// newClient builds the API client from the effective config.
func newClient() (config.Config, *api.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, err
	}
	baseURL, err := cfg.BaseURL()
	if err != nil {
		return cfg, nil, err
	}
	return cfg, api.New(baseURL, cfg.Timeout(), log.Stderr("api")), nil
}

// openCache opens the snapshot cache if caching is enabled.
func openCache(cfg config.Config) *store.Cache {
	if !cfg.General.Cache {
		return nil
	}
	if err := os.MkdirAll(config.Dir(), 0o755); err != nil {
		return nil
	}
	cache, err := store.OpenCache(config.CachePath())
	if err != nil {
		return nil
	}
	return cache
}

func listFilter() pipeline.Filter {
	return pipeline.Filter{Search: flagSearch, Category: flagCategory}
}
