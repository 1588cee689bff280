package driving

import (
	"context"

	"github.com/custodia-labs/worklens/internal/core/domain"
)

// SearchService provides workspace search to external actors.
type SearchService interface {
	// Search runs the full pipeline for one request: input validation,
	// membership check, artifact collection, intent analysis, scoring,
	// boosting and ranking. The response is well-formed even when some
	// collaborators fail.
	Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error)

	// Suggestions returns the curated example queries, in display order.
	Suggestions() []string
}

// WorkspaceService manages workspaces and their memberships.
type WorkspaceService interface {
	// CreateWorkspace creates a workspace and returns it with an ID assigned.
	CreateWorkspace(ctx context.Context, ws domain.Workspace) (*domain.Workspace, error)

	// GetWorkspace retrieves a workspace by ID.
	GetWorkspace(ctx context.Context, id string) (*domain.Workspace, error)

	// ListWorkspaces returns all workspaces.
	ListWorkspaces(ctx context.Context) ([]domain.Workspace, error)

	// AddMember adds a member to a workspace.
	AddMember(ctx context.Context, member domain.Member) (*domain.Member, error)

	// ListMembers returns the members of a workspace.
	ListMembers(ctx context.Context, workspaceID string) ([]domain.Member, error)
}
