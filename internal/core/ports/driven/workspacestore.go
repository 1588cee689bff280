package driven

import (
	"context"

	"github.com/custodia-labs/worklens/internal/core/domain"
)

// WorkspaceStore persists workspaces and their memberships.
// Membership lookups are served from already-loaded workspace state and
// never hit a remote service.
type WorkspaceStore interface {
	// CreateWorkspace persists a new workspace.
	// Returns domain.ErrAlreadyExists if the ID is taken.
	CreateWorkspace(ctx context.Context, ws *domain.Workspace) error

	// GetWorkspace retrieves a workspace by ID.
	// Returns domain.ErrNotFound if it does not exist.
	GetWorkspace(ctx context.Context, id string) (*domain.Workspace, error)

	// ListWorkspaces returns all workspaces.
	ListWorkspaces(ctx context.Context) ([]domain.Workspace, error)

	// AddMember persists a membership record.
	AddMember(ctx context.Context, member *domain.Member) error

	// ListMembers returns the members of a workspace.
	ListMembers(ctx context.Context, workspaceID string) ([]domain.Member, error)

	// IsMember reports whether the member belongs to the workspace.
	IsMember(ctx context.Context, workspaceID, memberID string) (bool, error)

	// Close releases resources.
	Close() error
}
