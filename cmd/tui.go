package cmd

import (
	"fmt"

	"nbntrack/internal/config"
	"nbntrack/internal/log"
	"nbntrack/internal/pipeline"
	"nbntrack/internal/store"
	"nbntrack/internal/tui"
	"nbntrack/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, client, err := newClient()
	if err != nil {
		return err
	}
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes.
	// Without this, lipgloss may default to Ascii profile (no colors).
	lipgloss.SetColorProfile(termenv.TrueColor)

	// Log to a file; stderr writes would corrupt the alt screen.
	logger, logFile, err := log.ToFile(config.Dir(), "tui")
	if err != nil {
		logger = log.Discard("tui")
	} else {
		defer logFile.Close()
	}

	cache := openCache(cfg)
	if cache != nil {
		defer cache.Close()
	}

	coord := pipeline.NewCoordinator(client, store.New(), cache, logger)
	app := tui.NewApp(coord, client, cfg, logger)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
