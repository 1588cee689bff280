package domain

// SearchRequest is the boundary contract for one search invocation.
type SearchRequest struct {
	// WorkspaceID identifies the workspace to search.
	WorkspaceID string

	// MemberID identifies the caller for the membership check.
	MemberID string

	// Query is the raw free-text query. Validated before the pipeline runs.
	Query string

	// Filter restricts and bounds the result set.
	Filter Filter
}

// SearchResponse is the boundary contract for one search result set.
// The response is always well-formed, even under partial provider failure.
type SearchResponse struct {
	// Results is the ranked artifact list, answers first.
	Results []Artifact

	// Total is the number of results.
	Total int

	// Query is the trimmed query text that was executed.
	Query string

	// Filter echoes the applied filter.
	Filter Filter

	// Sources maps each collaborator to the number of artifacts it
	// contributed. A failed collaborator contributes zero.
	Sources map[string]int
}
