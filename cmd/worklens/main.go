// Command worklens is the workspace search CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/worklens/internal/adapters/driven/config/file"
	"github.com/custodia-labs/worklens/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/worklens/internal/adapters/driving/cli"
	"github.com/custodia-labs/worklens/internal/connectors/drive"
	"github.com/custodia-labs/worklens/internal/connectors/github"
	"github.com/custodia-labs/worklens/internal/connectors/notion"
	"github.com/custodia-labs/worklens/internal/core/ports/driven"
	"github.com/custodia-labs/worklens/internal/core/services"
	"github.com/custodia-labs/worklens/internal/logger"
)

// version is set via ldflags at build time.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initialising config: %w", err)
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("initialising storage: %w", err)
	}
	defer store.Close()

	repoProvider := buildGitHubProvider(ctx, configStore)
	docProviders := buildDocumentProviders(ctx, configStore)

	searchService := services.NewSearchService(store, repoProvider, docProviders...)
	workspaceService := services.NewWorkspaceService(store)

	cli.SetVersion(version)
	cli.SetServices(searchService, workspaceService, configStore)

	return cli.Execute()
}

// buildGitHubProvider wires the GitHub provider when a token is stored.
// Without a token the client runs unauthenticated with a low rate limit.
func buildGitHubProvider(ctx context.Context, config driven.ConfigStore) driven.RepositoryProvider {
	token := config.GetString("github.token")
	if token == "" {
		logger.Debug("No GitHub token configured, using unauthenticated client")
	}
	return github.NewProvider(github.NewClient(ctx, token))
}

// buildDocumentProviders wires the document providers that have credentials.
func buildDocumentProviders(ctx context.Context, config driven.ConfigStore) []driven.DocumentProvider {
	var providers []driven.DocumentProvider

	if token := config.GetString("notion.token"); token != "" {
		providers = append(providers, notion.NewProvider(token))
	}

	if token := config.GetString("drive.token"); token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		provider, err := drive.NewProvider(ctx, ts)
		if err != nil {
			logger.Warn("Google Drive provider unavailable: %v", err)
		} else {
			providers = append(providers, provider)
		}
	}

	return providers
}
