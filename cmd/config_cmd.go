package cmd

import (
	"fmt"

	"nbntrack/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	baseURL := cfg.API.BaseURL
	if baseURL == "" {
		baseURL = "(unset — set api.base_url or " + config.EnvBaseURL + ")"
	}

	fmt.Printf("  config file:  %s", config.Path())
	if !config.Exists() {
		fmt.Print("  (not written yet)")
	}
	fmt.Println()
	fmt.Printf("  base url:     %s\n", baseURL)
	fmt.Printf("  timeout:      %ds\n", cfg.API.TimeoutSecs)
	fmt.Printf("  theme:        %s\n", cfg.Appearance.Theme)
	fmt.Printf("  cache:        %t\n", cfg.General.Cache)
	if cfg.Export.Dir != "" {
		fmt.Printf("  export dir:   %s\n", cfg.Export.Dir)
	}
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	if config.Exists() {
		return fmt.Errorf("config already exists at %s", config.Path())
	}
	if err := config.Save(config.Default()); err != nil {
		return err
	}
	fmt.Printf("  Wrote %s\n", config.Path())
	return nil
}
