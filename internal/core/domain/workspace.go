package domain

import "time"

// Workspace is a named collection of connected sources.
// It links one code-hosting repository and optional document sources.
type Workspace struct {
	// ID is the unique identifier for the workspace.
	ID string

	// Name is the human-readable workspace name.
	Name string

	// RepoOwner and RepoName identify the linked repository.
	RepoOwner string
	RepoName  string

	// NotionDatabaseID is the linked Notion database, if any.
	NotionDatabaseID string

	// DriveFolderID is the linked Google Drive folder, if any.
	DriveFolderID string

	// CreatedAt is when the workspace was created.
	CreatedAt time.Time
}

// HasRepo reports whether a repository is linked.
func (w *Workspace) HasRepo() bool {
	return w.RepoOwner != "" && w.RepoName != ""
}

// Member is a workspace membership record.
type Member struct {
	// ID is the unique identifier for the membership.
	ID string

	// WorkspaceID links to the Workspace.
	WorkspaceID string

	// Name is the member's display name.
	Name string

	// Email is the member's contact address.
	Email string

	// Role is the member's workspace role (e.g. "owner", "member").
	Role string

	// JoinedAt is when the member joined the workspace.
	JoinedAt time.Time
}
