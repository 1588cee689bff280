// Package memory provides in-memory implementations of driven port
// interfaces, used for tests and ephemeral setups.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/worklens/internal/core/domain"
	"github.com/custodia-labs/worklens/internal/core/ports/driven"
)

// Ensure WorkspaceStore implements the interface.
var _ driven.WorkspaceStore = (*WorkspaceStore)(nil)

// WorkspaceStore is an in-memory implementation of driven.WorkspaceStore.
type WorkspaceStore struct {
	mu         sync.RWMutex
	workspaces map[string]domain.Workspace
	members    map[string]domain.Member
}

// NewWorkspaceStore creates a new in-memory workspace store.
func NewWorkspaceStore() *WorkspaceStore {
	return &WorkspaceStore{
		workspaces: make(map[string]domain.Workspace),
		members:    make(map[string]domain.Member),
	}
}

// CreateWorkspace stores a new workspace.
func (s *WorkspaceStore) CreateWorkspace(_ context.Context, ws *domain.Workspace) error {
	if ws.ID == "" || ws.Name == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.workspaces[ws.ID]; ok {
		return domain.ErrAlreadyExists
	}
	s.workspaces[ws.ID] = *ws
	return nil
}

// GetWorkspace retrieves a workspace by ID.
func (s *WorkspaceStore) GetWorkspace(_ context.Context, id string) (*domain.Workspace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ws, ok := s.workspaces[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &ws, nil
}

// ListWorkspaces returns all workspaces ordered by creation time.
func (s *WorkspaceStore) ListWorkspaces(_ context.Context) ([]domain.Workspace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Workspace, 0, len(s.workspaces))
	for _, ws := range s.workspaces {
		result = append(result, ws)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// AddMember stores a new workspace member.
func (s *WorkspaceStore) AddMember(_ context.Context, member *domain.Member) error {
	if member.ID == "" || member.WorkspaceID == "" || member.Name == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.workspaces[member.WorkspaceID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := s.members[member.ID]; ok {
		return domain.ErrAlreadyExists
	}
	s.members[member.ID] = *member
	return nil
}

// ListMembers returns the members of a workspace ordered by join time.
func (s *WorkspaceStore) ListMembers(_ context.Context, workspaceID string) ([]domain.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.Member
	for _, m := range s.members {
		if m.WorkspaceID == workspaceID {
			result = append(result, m)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].JoinedAt.Before(result[j].JoinedAt)
	})
	return result, nil
}

// IsMember reports whether the member belongs to the workspace.
func (s *WorkspaceStore) IsMember(_ context.Context, workspaceID, memberID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.members[memberID]
	return ok && m.WorkspaceID == workspaceID, nil
}

// Close releases store resources. Nothing to release in memory.
func (s *WorkspaceStore) Close() error {
	return nil
}
