package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/worklens/internal/core/domain"
)

var (
	searchType      string
	searchLimit     int
	searchJSON      bool
	searchWorkspace string
	searchMember    string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the workspace",
	Long: `Searches the workspace for repositories, issues, pull requests,
commits, releases, documents and members. Questions are answered
directly when recognised.

Examples:
  worklens search "open pull requests"
  worklens search "how many open issues are there?"
  worklens search "deployment checklist" --type documents
  worklens search "alice" --type members --limit 5`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchType, "type", "t", "", "filter results by type (all, github, documents, members)")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().StringVarP(&searchWorkspace, "workspace", "w", "", "workspace ID (defaults to the configured workspace)")
	searchCmd.Flags().StringVarP(&searchMember, "member", "m", "", "member ID to search as")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	workspaceID := searchWorkspace
	if workspaceID == "" && configStore != nil {
		workspaceID = configStore.GetString("workspace.default")
	}
	if workspaceID == "" {
		return errors.New("no workspace selected: pass --workspace or set workspace.default")
	}

	req := domain.SearchRequest{
		WorkspaceID: workspaceID,
		MemberID:    searchMember,
		Query:       args[0],
		Filter: domain.Filter{
			Type:  domain.FilterType(searchType),
			Limit: searchLimit,
		},
	}
	if err := req.Filter.Validate(); err != nil {
		return err
	}

	resp, err := searchService.Search(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, resp)
	}

	return outputSearchTable(cmd, resp)
}

func outputSearchJSON(cmd *cobra.Command, resp *domain.SearchResponse) error {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, resp *domain.SearchResponse) error {
	if len(resp.Results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Printf("Results for %q:\n", resp.Query)
	cmd.Println()
	for i := range resp.Results {
		r := &resp.Results[i]

		if r.IsAnswer() {
			cmd.Printf("  ★ %s\n", r.Title)
			if r.Description != "" {
				cmd.Printf("      %s\n", r.Description)
			}
			cmd.Println()
			continue
		}

		cmd.Printf("  [%d] %s (%s, %.2f)\n", i+1, r.Title, r.Kind, r.Score)
		if r.Description != "" {
			cmd.Printf("      %s\n", firstLine(r.Description))
		}
		if r.URL != "" {
			cmd.Printf("      %s\n", r.URL)
		}
		cmd.Println()
	}

	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
