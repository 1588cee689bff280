package mcp

import (
	"github.com/custodia-labs/worklens/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides workspace search.
	Search driving.SearchService

	// Workspace manages workspaces and members.
	Workspace driving.WorkspaceService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	// Workspace is optional; the workspace tools are skipped without it.
	return nil
}
