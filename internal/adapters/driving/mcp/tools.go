package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/worklens/internal/core/domain"
)

// SearchInput is the input schema for the workspace_search tool.
type SearchInput struct {
	WorkspaceID string `json:"workspace_id" jsonschema:"the workspace to search"`
	MemberID    string `json:"member_id,omitempty" jsonschema:"the member running the search"`
	Query       string `json:"query" jsonschema:"the free-text search query or question"`
	Type        string `json:"type,omitempty" jsonschema:"filter results by type (all, github, documents, members)"`
	Limit       int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchOutput is the output schema for the workspace_search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
	Sources map[string]int       `json:"sources"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	ID          string        `json:"id"`
	Kind        string        `json:"kind"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	URL         string        `json:"url,omitempty"`
	Score       float64       `json:"score"`
	Answer      *AnswerOutput `json:"answer,omitempty"`
}

// AnswerOutput carries the structured payload of an answer result.
type AnswerOutput struct {
	Type     string   `json:"type"`
	Count    int      `json:"count,omitempty"`
	Total    int      `json:"total,omitempty"`
	Names    []string `json:"names,omitempty"`
	Language string   `json:"language,omitempty"`
}

// SuggestionsInput is the input schema for the search_suggestions tool.
type SuggestionsInput struct{}

// SuggestionsOutput is the output schema for the search_suggestions tool.
type SuggestionsOutput struct {
	Suggestions []string `json:"suggestions"`
}

// WorkspacesInput is the input schema for the list_workspaces tool.
type WorkspacesInput struct{}

// WorkspacesOutput is the output schema for the list_workspaces tool.
type WorkspacesOutput struct {
	Workspaces []WorkspaceOutput `json:"workspaces"`
}

// WorkspaceOutput represents a single workspace.
type WorkspaceOutput struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	RepoOwner string `json:"repo_owner,omitempty"`
	RepoName  string `json:"repo_name,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "workspace_search",
		Description: "Search a workspace for repositories, issues, pull requests, commits, releases, documents and members. Questions like 'how many open issues are there?' are answered directly.",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_suggestions",
		Description: "List example queries that demonstrate what workspace search understands",
	}, s.handleSuggestions)

	if s.ports.Workspace != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "list_workspaces",
			Description: "List the available workspaces",
		}, s.handleWorkspaces)
	}
}

// handleSearch handles the workspace_search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	req := domain.SearchRequest{
		WorkspaceID: input.WorkspaceID,
		MemberID:    input.MemberID,
		Query:       input.Query,
		Filter: domain.Filter{
			Type:  domain.FilterType(input.Type),
			Limit: limit,
		},
	}

	resp, err := s.ports.Search.Search(ctx, req)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(resp.Results)),
		Count:   resp.Total,
		Sources: resp.Sources,
	}

	for i := range resp.Results {
		r := &resp.Results[i]
		out := SearchResultOutput{
			ID:          r.ID,
			Kind:        string(r.Kind),
			Title:       r.Title,
			Description: r.Description,
			URL:         r.URL,
			Score:       r.Score,
		}
		if r.Answer != nil {
			out.Answer = &AnswerOutput{
				Type:     string(r.Answer.Type),
				Count:    r.Answer.Count,
				Total:    r.Answer.Total,
				Names:    r.Answer.Names,
				Language: r.Answer.Language,
			}
		}
		output.Results[i] = out
	}

	return nil, output, nil
}

// handleSuggestions handles the search_suggestions tool invocation.
func (s *Server) handleSuggestions(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ SuggestionsInput,
) (*mcp.CallToolResult, SuggestionsOutput, error) {
	return nil, SuggestionsOutput{Suggestions: s.ports.Search.Suggestions()}, nil
}

// handleWorkspaces handles the list_workspaces tool invocation.
func (s *Server) handleWorkspaces(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ WorkspacesInput,
) (*mcp.CallToolResult, WorkspacesOutput, error) {
	workspaces, err := s.ports.Workspace.ListWorkspaces(ctx)
	if err != nil {
		return nil, WorkspacesOutput{}, err
	}

	output := WorkspacesOutput{
		Workspaces: make([]WorkspaceOutput, len(workspaces)),
	}
	for i := range workspaces {
		output.Workspaces[i] = WorkspaceOutput{
			ID:        workspaces[i].ID,
			Name:      workspaces[i].Name,
			RepoOwner: workspaces[i].RepoOwner,
			RepoName:  workspaces[i].RepoName,
		}
	}

	return nil, output, nil
}
