package domain

import "time"

// Raw records represent source data as fetched by a provider, before
// normalisation into Artifacts. A record missing required fields is
// skipped by the normaliser, never fatal to the batch.

// RepoRecord is a repository fetched from the code-hosting provider.
type RepoRecord struct {
	Owner        string
	Name         string
	FullName     string
	Description  string
	URL          string
	Language     string
	Stars        int
	Forks        int
	OpenIssues   int
	Topics       []string
	Contributors []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IssueRecord is an issue fetched from the code-hosting provider.
type IssueRecord struct {
	Number    int
	Title     string
	Body      string
	State     string
	Author    string
	URL       string
	Labels    []string
	Comments  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PullRequestRecord is a pull request fetched from the code-hosting provider.
type PullRequestRecord struct {
	Number    int
	Title     string
	Body      string
	State     string
	Author    string
	URL       string
	Labels    []string
	Draft     bool
	Merged    bool
	MergedAt  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CommitRecord is a commit fetched from the code-hosting provider.
type CommitRecord struct {
	SHA       string
	Message   string
	Author    string
	URL       string
	CreatedAt time.Time
}

// ReleaseRecord is a release fetched from the code-hosting provider.
type ReleaseRecord struct {
	TagName     string
	Name        string
	Body        string
	Author      string
	URL         string
	Draft       bool
	Prerelease  bool
	CreatedAt   time.Time
	PublishedAt *time.Time
}

// DocumentRecord is a document fetched from a documents provider.
type DocumentRecord struct {
	ID        string
	Title     string
	Type      string
	Status    string
	URL       string
	CreatedAt time.Time
	UpdatedAt time.Time
}
