package domain

import "time"

// Kind identifies the type of a searchable artifact.
type Kind string

// Artifact kinds.
const (
	KindRepo        Kind = "repo"
	KindIssue       Kind = "issue"
	KindPullRequest Kind = "pull_request"
	KindCommit      Kind = "commit"
	KindRelease     Kind = "release"
	KindDocument    Kind = "document"
	KindMember      Kind = "member"
	KindAnswer      Kind = "answer"
)

// Valid reports whether k is a known artifact kind.
func (k Kind) Valid() bool {
	switch k {
	case KindRepo, KindIssue, KindPullRequest, KindCommit, KindRelease,
		KindDocument, KindMember, KindAnswer:
		return true
	}
	return false
}

// Metadata holds the optional attributes of an artifact.
// Every field may be absent; scoring and boosting rules state their
// required fields and fall back to a default when a field is unset.
type Metadata struct {
	// Author is the login or display name of the record author.
	Author string

	// State is the lifecycle state ("open", "closed", "merged").
	State string

	// Labels are the label names attached to the record.
	Labels []string

	// Keywords are lowercase semantic tags derived at normalisation time.
	Keywords []string

	// Language is the primary language of a repository.
	Language string

	// Contributors are the top distinct author logins of a repository.
	Contributors []string

	// CreatedAt is when the underlying record was created.
	CreatedAt *time.Time

	// UpdatedAt is when the underlying record was last modified.
	UpdatedAt *time.Time

	// PublishedAt is when a release was published.
	PublishedAt *time.Time

	// Merged indicates a pull request has been merged.
	Merged *bool

	// Draft indicates a pull request or release is a draft.
	Draft *bool

	// Stars is the repository stargazer count.
	Stars int

	// Forks is the repository fork count.
	Forks int

	// Number is the issue or pull request number.
	Number int

	// Version is the release tag name.
	Version string

	// Role is the workspace role of a member.
	Role string

	// Email is the contact address of a member.
	Email string

	// DocType is the document type reported by the documents source.
	DocType string

	// DocStatus is the document status reported by the documents source.
	DocStatus string
}

// Timestamp returns the reference time of the artifact for recency rules:
// PublishedAt when set, otherwise CreatedAt, otherwise the zero time.
func (m Metadata) Timestamp() time.Time {
	if m.PublishedAt != nil {
		return *m.PublishedAt
	}
	if m.CreatedAt != nil {
		return *m.CreatedAt
	}
	return time.Time{}
}

// Artifact is a normalised, searchable unit produced from one source
// record, or synthesised as a direct answer to a recognised question.
type Artifact struct {
	// ID is the unique identifier for the artifact.
	ID string

	// Kind is the artifact type.
	Kind Kind

	// Title is the human-readable title. Never empty for a valid artifact.
	Title string

	// Description is the free text body. May be empty.
	Description string

	// URL is the original location. Empty for answers and members.
	URL string

	// Score is the relevance score. Set to a per-kind prior at
	// normalisation, rewritten by the scorer and booster stages.
	Score float64

	// Meta holds the optional source attributes.
	Meta Metadata

	// Answer carries the structured answer payload when Kind is KindAnswer.
	Answer *Answer
}

// IsAnswer reports whether the artifact is a synthesised answer.
func (a *Artifact) IsAnswer() bool {
	return a.Kind == KindAnswer
}

// Validate checks the artifact invariants: a non-empty title, a known
// kind, a finite non-negative score, and an answer payload on answers.
func (a *Artifact) Validate() error {
	if a.Title == "" {
		return ErrInvalidInput
	}
	if !a.Kind.Valid() {
		return ErrInvalidInput
	}
	if a.Score < 0 || a.Score != a.Score {
		return ErrInvalidInput
	}
	if a.Kind == KindAnswer && a.Answer == nil {
		return ErrInvalidInput
	}
	return nil
}
