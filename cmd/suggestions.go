package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var suggestionsCmd = &cobra.Command{
	Use:   "suggestions",
	Short: "Show saving suggestions",
	RunE:  runSuggestions,
}

func init() {
	rootCmd.AddCommand(suggestionsCmd)
}

func runSuggestions(cmd *cobra.Command, _ []string) error {
	_, client, err := newClient()
	if err != nil {
		return err
	}

	suggestions, err := client.Suggestions(cmd.Context())
	if err != nil {
		return err
	}

	if len(suggestions) == 0 {
		fmt.Println("  No suggestions right now.")
		return nil
	}
	for _, s := range suggestions {
		fmt.Println("  • " + s)
	}
	return nil
}
