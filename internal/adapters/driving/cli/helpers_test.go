package cli

import (
	"context"
	"errors"
	"time"

	"github.com/custodia-labs/worklens/internal/core/domain"
)

// mockSearchService returns canned results for command tests.
type mockSearchService struct {
	resp *domain.SearchResponse
	err  error
	last domain.SearchRequest
}

func (m *mockSearchService) Search(_ context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	m.last = req
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func (m *mockSearchService) Suggestions() []string {
	return []string{"open pull requests", "who works here?"}
}

// mockWorkspaceService returns canned workspaces and members.
type mockWorkspaceService struct {
	workspaces []domain.Workspace
	members    []domain.Member
	err        error
}

func (m *mockWorkspaceService) CreateWorkspace(_ context.Context, ws domain.Workspace) (*domain.Workspace, error) {
	if m.err != nil {
		return nil, m.err
	}
	ws.ID = "ws-new"
	ws.CreatedAt = time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	return &ws, nil
}

func (m *mockWorkspaceService) GetWorkspace(_ context.Context, id string) (*domain.Workspace, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.workspaces {
		if m.workspaces[i].ID == id {
			return &m.workspaces[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockWorkspaceService) ListWorkspaces(_ context.Context) ([]domain.Workspace, error) {
	return m.workspaces, m.err
}

func (m *mockWorkspaceService) AddMember(_ context.Context, member domain.Member) (*domain.Member, error) {
	if m.err != nil {
		return nil, m.err
	}
	member.ID = "m-new"
	member.JoinedAt = time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	return &member, nil
}

func (m *mockWorkspaceService) ListMembers(_ context.Context, _ string) ([]domain.Member, error) {
	return m.members, m.err
}

// mockConfigStore keeps values in memory.
type mockConfigStore struct {
	values map[string]any
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{values: make(map[string]any)}
}

func (m *mockConfigStore) GetString(key string) string {
	s, _ := m.values[key].(string)
	return s
}

func (m *mockConfigStore) GetInt(key string) int {
	i, _ := m.values[key].(int)
	return i
}

func (m *mockConfigStore) GetBool(key string) bool {
	b, _ := m.values[key].(bool)
	return b
}

func (m *mockConfigStore) Set(key string, value any) error {
	m.values[key] = value
	return nil
}

func (m *mockConfigStore) Load() error { return nil }

func (m *mockConfigStore) Watch(ctx context.Context, _ func()) error {
	<-ctx.Done()
	return ctx.Err()
}

func (m *mockConfigStore) Path() string { return "/tmp/config.toml" }

// setupTestServices installs mock services and returns a cleanup func.
func setupTestServices() func() {
	oldSearch := searchService
	oldWorkspace := workspaceService
	oldConfig := configStore

	created := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	searchService = &mockSearchService{
		resp: &domain.SearchResponse{
			Results: []domain.Artifact{
				{
					ID:    "a-1",
					Kind:  domain.KindIssue,
					Title: "Issue #1: Crash on startup",
					URL:   "https://github.com/acme/widgets/issues/1",
					Score: 0.95,
					Meta:  domain.Metadata{CreatedAt: &created},
				},
			},
			Total:   1,
			Query:   "crash",
			Sources: map[string]int{"github": 1},
		},
	}
	workspaceService = &mockWorkspaceService{
		workspaces: []domain.Workspace{
			{
				ID:        "ws-1",
				Name:      "Acme",
				RepoOwner: "acme",
				RepoName:  "widgets",
				CreatedAt: created,
			},
		},
		members: []domain.Member{
			{
				ID:          "m-1",
				WorkspaceID: "ws-1",
				Name:        "Alice",
				Email:       "alice@acme.dev",
				Role:        "owner",
				JoinedAt:    created,
			},
		},
	}
	config := newMockConfigStore()
	_ = config.Set("workspace.default", "ws-1")
	configStore = config

	return func() {
		searchService = oldSearch
		workspaceService = oldWorkspace
		configStore = oldConfig
	}
}

// answerResponse returns a response with an answer ranked first.
func answerResponse() *domain.SearchResponse {
	created := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	return &domain.SearchResponse{
		Results: []domain.Artifact{
			{
				ID:          "ans-1",
				Kind:        domain.KindAnswer,
				Title:       "3 open issues",
				Description: "The repository has 3 open issues.",
				Score:       1.0,
				Answer:      &domain.Answer{Type: domain.AnswerCount, Count: 3},
			},
			{
				ID:    "a-1",
				Kind:  domain.KindIssue,
				Title: "Issue #1: Crash on startup",
				Score: 0.6,
				Meta:  domain.Metadata{CreatedAt: &created},
			},
		},
		Total:   2,
		Query:   "how many open issues are there?",
		Sources: map[string]int{"github": 2},
	}
}

// emptyResponse returns a response with no results.
func emptyResponse() *domain.SearchResponse {
	return &domain.SearchResponse{
		Results: []domain.Artifact{},
		Query:   "nothing",
		Sources: map[string]int{},
	}
}

// mockSearchServiceError always fails.
type mockSearchServiceError struct{}

func (m *mockSearchServiceError) Search(_ context.Context, _ domain.SearchRequest) (*domain.SearchResponse, error) {
	return nil, errors.New("backend unavailable")
}

func (m *mockSearchServiceError) Suggestions() []string { return nil }
