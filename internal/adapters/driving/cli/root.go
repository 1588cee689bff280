// Package cli implements the command-line interface using cobra.
// Commands receive their services through SetServices before Execute.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/worklens/internal/core/ports/driven"
	"github.com/custodia-labs/worklens/internal/core/ports/driving"
	"github.com/custodia-labs/worklens/internal/logger"
)

// version is set from main at build time.
var version = "dev"

// Injected services.
var (
	searchService    driving.SearchService
	workspaceService driving.WorkspaceService
	configStore      driven.ConfigStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "worklens",
	Short: "Search your team workspace from the terminal",
	Long: `Worklens searches across a team workspace: the GitHub repository,
Notion and Google Drive documents, and workspace members. Natural
language questions ("how many open issues are there?") are answered
directly, ranked ahead of the matching artifacts.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices injects the services the commands depend on.
func SetServices(
	search driving.SearchService,
	workspace driving.WorkspaceService,
	config driven.ConfigStore,
) {
	searchService = search
	workspaceService = workspace
	configStore = config
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
