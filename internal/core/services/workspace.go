package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/worklens/internal/core/domain"
	"github.com/custodia-labs/worklens/internal/core/ports/driven"
	"github.com/custodia-labs/worklens/internal/core/ports/driving"
)

// Ensure WorkspaceService implements the interface.
var _ driving.WorkspaceService = (*WorkspaceService)(nil)

// WorkspaceService manages workspaces and their memberships.
type WorkspaceService struct {
	store driven.WorkspaceStore
	now   func() time.Time
}

// NewWorkspaceService creates a new workspace service.
func NewWorkspaceService(store driven.WorkspaceStore) *WorkspaceService {
	return &WorkspaceService{store: store, now: time.Now}
}

// CreateWorkspace creates a workspace, assigning an ID when absent.
func (s *WorkspaceService) CreateWorkspace(
	ctx context.Context, ws domain.Workspace,
) (*domain.Workspace, error) {
	if ws.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if ws.ID == "" {
		ws.ID = uuid.New().String()
	}
	if ws.CreatedAt.IsZero() {
		ws.CreatedAt = s.now()
	}

	if err := s.store.CreateWorkspace(ctx, &ws); err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	return &ws, nil
}

// GetWorkspace retrieves a workspace by ID.
func (s *WorkspaceService) GetWorkspace(ctx context.Context, id string) (*domain.Workspace, error) {
	ws, err := s.store.GetWorkspace(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get workspace: %w", err)
	}
	return ws, nil
}

// ListWorkspaces returns all workspaces.
func (s *WorkspaceService) ListWorkspaces(ctx context.Context) ([]domain.Workspace, error) {
	workspaces, err := s.store.ListWorkspaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	return workspaces, nil
}

// AddMember adds a member to a workspace, assigning an ID when absent.
func (s *WorkspaceService) AddMember(
	ctx context.Context, member domain.Member,
) (*domain.Member, error) {
	if member.WorkspaceID == "" || member.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	if member.JoinedAt.IsZero() {
		member.JoinedAt = s.now()
	}

	// Workspace must exist before the membership is persisted.
	if _, err := s.store.GetWorkspace(ctx, member.WorkspaceID); err != nil {
		return nil, fmt.Errorf("get workspace: %w", err)
	}

	if err := s.store.AddMember(ctx, &member); err != nil {
		return nil, fmt.Errorf("add member: %w", err)
	}
	return &member, nil
}

// ListMembers returns the members of a workspace.
func (s *WorkspaceService) ListMembers(ctx context.Context, workspaceID string) ([]domain.Member, error) {
	members, err := s.store.ListMembers(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}
