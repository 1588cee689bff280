package driven

import (
	"context"

	"github.com/custodia-labs/worklens/internal/core/domain"
)

// RepositoryProvider fetches records from the code-hosting service for
// one repository. Every method may return an empty list; callers log
// failures and proceed with whatever data is available.
type RepositoryProvider interface {
	// Name returns the provider identifier used in the response
	// sources map (e.g. "github").
	Name() string

	// Repository fetches the repository record itself, including its
	// top contributors.
	Repository(ctx context.Context, owner, name string) (*domain.RepoRecord, error)

	// Issues fetches the repository's issues, excluding pull requests.
	Issues(ctx context.Context, owner, name string) ([]domain.IssueRecord, error)

	// PullRequests fetches the repository's pull requests in all states.
	PullRequests(ctx context.Context, owner, name string) ([]domain.PullRequestRecord, error)

	// Commits fetches the repository's recent commits.
	Commits(ctx context.Context, owner, name string) ([]domain.CommitRecord, error)

	// Releases fetches the repository's releases.
	Releases(ctx context.Context, owner, name string) ([]domain.ReleaseRecord, error)

	// Close releases resources.
	Close() error
}

// DocumentProvider fetches document records for a workspace from a
// documents service.
type DocumentProvider interface {
	// Name returns the provider identifier used in the response
	// sources map (e.g. "notion", "drive").
	Name() string

	// Documents fetches the document records linked to the workspace.
	Documents(ctx context.Context, ws domain.Workspace) ([]domain.DocumentRecord, error)

	// Close releases resources.
	Close() error
}
