package cmd

import (
	"fmt"
	"time"

	"nbntrack/internal/export"

	"github.com/spf13/cobra"
)

var flagExportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Save a full data snapshot to disk",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportDir, "out", "o", "", "Directory to write the export into (default: config export.dir or cwd)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, client, err := newClient()
	if err != nil {
		return err
	}

	dir := flagExportDir
	if dir == "" {
		dir = cfg.Export.Dir
	}

	path, err := export.Write(cmd.Context(), client, dir, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("  Exported to %s\n", path)
	return nil
}
