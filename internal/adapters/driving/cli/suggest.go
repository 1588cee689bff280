package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Show example queries",
	Long:  `Prints curated example queries that demonstrate what search understands.`,
	RunE:  runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	cmd.Println("Try searching for:")
	for _, s := range searchService.Suggestions() {
		cmd.Printf("  worklens search %q\n", s)
	}
	return nil
}
