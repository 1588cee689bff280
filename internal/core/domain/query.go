package domain

import "strings"

// FilterType restricts search results to a group of artifact kinds.
type FilterType string

// Filter types.
const (
	// FilterAll keeps every artifact kind.
	FilterAll FilterType = "all"

	// FilterGitHub keeps code-hosting artifacts
	// (repos, issues, pull requests, commits, releases).
	FilterGitHub FilterType = "github"

	// FilterDocuments keeps document artifacts.
	FilterDocuments FilterType = "documents"

	// FilterMembers keeps member artifacts.
	FilterMembers FilterType = "members"
)

// Valid reports whether f is a known filter type.
func (f FilterType) Valid() bool {
	switch f {
	case FilterAll, FilterGitHub, FilterDocuments, FilterMembers:
		return true
	}
	return false
}

// Matches reports whether an artifact kind passes the filter.
// Answers always pass regardless of the filter type.
func (f FilterType) Matches(k Kind) bool {
	if k == KindAnswer {
		return true
	}
	switch f {
	case FilterAll, "":
		return true
	case FilterGitHub:
		switch k {
		case KindRepo, KindIssue, KindPullRequest, KindCommit, KindRelease:
			return true
		}
		return false
	case FilterDocuments:
		return k == KindDocument
	case FilterMembers:
		return k == KindMember
	}
	return false
}

// Filter restricts and bounds a result set.
type Filter struct {
	// Type is the kind group to keep. Empty means all.
	Type FilterType

	// Limit is the maximum number of results. Zero means no limit.
	Limit int
}

// Validate checks the filter invariants.
func (f Filter) Validate() error {
	if f.Type != "" && !f.Type.Valid() {
		return ErrInvalidFilter
	}
	if f.Limit < 0 {
		return ErrInvalidFilter
	}
	return nil
}

// Query is an immutable search query: trimmed non-empty text plus an
// optional filter.
type Query struct {
	// Text is the trimmed query text.
	Text string

	// Filter restricts the result set.
	Filter Filter
}

// NewQuery builds a query from raw text, trimming whitespace.
// An empty or whitespace-only text is rejected with ErrEmptyQuery.
func NewQuery(text string, filter Filter) (Query, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Query{}, ErrEmptyQuery
	}
	if err := filter.Validate(); err != nil {
		return Query{}, err
	}
	return Query{Text: text, Filter: filter}, nil
}

// Lower returns the lowercased query text.
func (q Query) Lower() string {
	return strings.ToLower(q.Text)
}

// Tokens returns the lowercased whitespace-separated query tokens.
func (q Query) Tokens() []string {
	return strings.Fields(q.Lower())
}
