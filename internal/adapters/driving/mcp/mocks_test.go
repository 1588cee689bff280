package mcp

import (
	"context"

	"github.com/custodia-labs/worklens/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	resp        *domain.SearchResponse
	suggestions []string
	err         error
	last        domain.SearchRequest
}

func (m *mockSearchService) Search(_ context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	m.last = req
	if m.err != nil {
		return nil, m.err
	}
	if m.resp == nil {
		return &domain.SearchResponse{Sources: map[string]int{}}, nil
	}
	return m.resp, nil
}

func (m *mockSearchService) Suggestions() []string {
	return m.suggestions
}

// mockWorkspaceService is a mock implementation of driving.WorkspaceService.
type mockWorkspaceService struct {
	workspaces []domain.Workspace
	members    []domain.Member
	err        error
}

func (m *mockWorkspaceService) CreateWorkspace(_ context.Context, ws domain.Workspace) (*domain.Workspace, error) {
	return &ws, m.err
}

func (m *mockWorkspaceService) GetWorkspace(_ context.Context, _ string) (*domain.Workspace, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.workspaces) == 0 {
		return nil, domain.ErrNotFound
	}
	return &m.workspaces[0], nil
}

func (m *mockWorkspaceService) ListWorkspaces(_ context.Context) ([]domain.Workspace, error) {
	return m.workspaces, m.err
}

func (m *mockWorkspaceService) AddMember(_ context.Context, member domain.Member) (*domain.Member, error) {
	return &member, m.err
}

func (m *mockWorkspaceService) ListMembers(_ context.Context, _ string) ([]domain.Member, error) {
	return m.members, m.err
}
