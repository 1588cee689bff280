package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/worklens/internal/core/domain"
	"github.com/custodia-labs/worklens/internal/core/ports/driven"
	"github.com/custodia-labs/worklens/internal/logger"
)

// ProviderName identifies this provider in source counts.
const ProviderName = "github"

// contributorFetchLimit caps the contributor names carried on the
// repository record.
const contributorFetchLimit = 10

// Ensure Provider implements the interface.
var _ driven.RepositoryProvider = (*Provider)(nil)

// Provider serves repository data from the GitHub REST API.
type Provider struct {
	client *Client
}

// NewProvider creates a repository provider backed by the given client.
func NewProvider(client *Client) *Provider {
	return &Provider{client: client}
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return ProviderName
}

// Repository fetches the repository record, including the contributor
// list. A failing contributor fetch degrades to an empty list.
func (p *Provider) Repository(ctx context.Context, owner, name string) (*domain.RepoRecord, error) {
	repo, err := p.client.GetRepository(ctx, owner, name)
	if err != nil {
		return nil, fmt.Errorf("fetch repository %s/%s: %w", owner, name, err)
	}

	record := domain.RepoRecord{
		Owner:       repo.GetOwner().GetLogin(),
		Name:        repo.GetName(),
		FullName:    repo.GetFullName(),
		Description: repo.GetDescription(),
		URL:         repo.GetHTMLURL(),
		Language:    repo.GetLanguage(),
		Stars:       repo.GetStargazersCount(),
		Forks:       repo.GetForksCount(),
		OpenIssues:  repo.GetOpenIssuesCount(),
		Topics:      repo.Topics,
		CreatedAt:   repo.GetCreatedAt().Time,
		UpdatedAt:   repo.GetUpdatedAt().Time,
	}

	contributors, err := p.client.ListContributors(ctx, owner, name)
	if err != nil {
		logger.Warn("Contributor fetch failed for %s/%s: %v", owner, name, err)
	} else {
		for _, c := range contributors {
			if len(record.Contributors) == contributorFetchLimit {
				break
			}
			if login := c.GetLogin(); login != "" {
				record.Contributors = append(record.Contributors, login)
			}
		}
	}

	return &record, nil
}

// Issues fetches all issues of the repository. Pull requests surface on
// the same API endpoint and are excluded here.
func (p *Provider) Issues(ctx context.Context, owner, name string) ([]domain.IssueRecord, error) {
	opts := &gh.IssueListByRepoOptions{
		State:       "all",
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: gh.ListOptions{PerPage: PerPage},
	}

	issues, err := p.client.ListIssues(ctx, owner, name, opts)
	if err != nil {
		return nil, fmt.Errorf("fetch issues %s/%s: %w", owner, name, err)
	}

	records := make([]domain.IssueRecord, 0, len(issues))
	for _, issue := range issues {
		if issue.IsPullRequest() {
			continue
		}
		records = append(records, domain.IssueRecord{
			Number:    issue.GetNumber(),
			Title:     issue.GetTitle(),
			Body:      issue.GetBody(),
			State:     issue.GetState(),
			Author:    issue.GetUser().GetLogin(),
			URL:       issue.GetHTMLURL(),
			Labels:    labelNames(issue.Labels),
			Comments:  issue.GetComments(),
			CreatedAt: issue.GetCreatedAt().Time,
			UpdatedAt: issue.GetUpdatedAt().Time,
		})
	}

	return records, nil
}

// PullRequests fetches all pull requests of the repository.
func (p *Provider) PullRequests(ctx context.Context, owner, name string) ([]domain.PullRequestRecord, error) {
	opts := &gh.PullRequestListOptions{
		State:       "all",
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: gh.ListOptions{PerPage: PerPage},
	}

	pulls, err := p.client.ListPullRequests(ctx, owner, name, opts)
	if err != nil {
		return nil, fmt.Errorf("fetch pull requests %s/%s: %w", owner, name, err)
	}

	records := make([]domain.PullRequestRecord, 0, len(pulls))
	for _, pr := range pulls {
		record := domain.PullRequestRecord{
			Number:    pr.GetNumber(),
			Title:     pr.GetTitle(),
			Body:      pr.GetBody(),
			State:     pr.GetState(),
			Author:    pr.GetUser().GetLogin(),
			URL:       pr.GetHTMLURL(),
			Labels:    labelNames(pr.Labels),
			Draft:     pr.GetDraft(),
			CreatedAt: pr.GetCreatedAt().Time,
			UpdatedAt: pr.GetUpdatedAt().Time,
		}
		// The list endpoint leaves Merged unset; a merge timestamp is
		// the reliable signal.
		if mergedAt := pr.GetMergedAt(); !mergedAt.IsZero() {
			t := mergedAt.Time
			record.Merged = true
			record.MergedAt = &t
		}
		records = append(records, record)
	}

	return records, nil
}

// Commits fetches the most recent commits of the default branch.
func (p *Provider) Commits(ctx context.Context, owner, name string) ([]domain.CommitRecord, error) {
	commits, err := p.client.ListCommits(ctx, owner, name)
	if err != nil {
		return nil, fmt.Errorf("fetch commits %s/%s: %w", owner, name, err)
	}

	records := make([]domain.CommitRecord, 0, len(commits))
	for _, commit := range commits {
		author := commit.GetAuthor().GetLogin()
		if author == "" {
			author = commit.GetCommit().GetAuthor().GetName()
		}
		records = append(records, domain.CommitRecord{
			SHA:       commit.GetSHA(),
			Message:   commit.GetCommit().GetMessage(),
			Author:    author,
			URL:       commit.GetHTMLURL(),
			CreatedAt: commit.GetCommit().GetAuthor().GetDate().Time,
		})
	}

	return records, nil
}

// Releases fetches the most recent releases of the repository.
func (p *Provider) Releases(ctx context.Context, owner, name string) ([]domain.ReleaseRecord, error) {
	releases, err := p.client.ListReleases(ctx, owner, name)
	if err != nil {
		return nil, fmt.Errorf("fetch releases %s/%s: %w", owner, name, err)
	}

	records := make([]domain.ReleaseRecord, 0, len(releases))
	for _, release := range releases {
		record := domain.ReleaseRecord{
			TagName:    release.GetTagName(),
			Name:       release.GetName(),
			Body:       release.GetBody(),
			Author:     release.GetAuthor().GetLogin(),
			URL:        release.GetHTMLURL(),
			Draft:      release.GetDraft(),
			Prerelease: release.GetPrerelease(),
			CreatedAt:  release.GetCreatedAt().Time,
		}
		if publishedAt := release.GetPublishedAt(); !publishedAt.IsZero() {
			t := publishedAt.Time
			record.PublishedAt = &t
		}
		records = append(records, record)
	}

	return records, nil
}

// Close releases provider resources. The HTTP client needs no teardown.
func (p *Provider) Close() error {
	return nil
}

func labelNames(labels []*gh.Label) []string {
	if len(labels) == 0 {
		return nil
	}
	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = l.GetName()
	}
	return names
}
