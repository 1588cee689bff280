package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/worklens/internal/core/domain"
)

func tsPtr(year, month, day int) *time.Time {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &t
}

func issue(id, title, state string, labels ...string) domain.Artifact {
	return domain.Artifact{
		ID: id, Kind: domain.KindIssue, Title: title,
		Meta: domain.Metadata{State: state, Labels: labels},
	}
}

func intentFixture() []domain.Artifact {
	return []domain.Artifact{
		{
			ID: "repo-1", Kind: domain.KindRepo, Title: "acme/widgets",
			Meta: domain.Metadata{
				Language:     "Go",
				Stars:        120,
				Forks:        14,
				Contributors: []string{"alice", "bob", "carol"},
			},
		},
		issue("i-1", "Crash on startup", "open", "bug"),
		issue("i-2", "Add dark mode", "open", "enhancement"),
		issue("i-3", "Docs typo", "open"),
		issue("i-4", "Fix memory leak", "closed", "bug"),
		issue("i-5", "Old request", "closed"),
		{
			ID: "pr-1", Kind: domain.KindPullRequest, Title: "PR #10: cache layer",
			Meta: domain.Metadata{State: "open"},
		},
		{
			ID: "pr-2", Kind: domain.KindPullRequest, Title: "PR #11: lint fixes",
			Meta: domain.Metadata{State: "open"},
		},
		{
			ID: "pr-3", Kind: domain.KindPullRequest, Title: "PR #9: old work",
			Meta: domain.Metadata{State: "closed"},
		},
		{
			ID: "pr-4", Kind: domain.KindPullRequest, Title: "PR #8: merged work",
			Meta: domain.Metadata{State: "merged"},
		},
		{
			ID: "pr-5", Kind: domain.KindPullRequest, Title: "PR #7: abandoned",
			Meta: domain.Metadata{State: "closed"},
		},
		{
			ID: "c-1", Kind: domain.KindCommit, Title: "Add retry logic",
			Meta: domain.Metadata{Author: "alice", CreatedAt: tsPtr(2023, 7, 10)},
		},
		{
			ID: "c-2", Kind: domain.KindCommit, Title: "Initial commit",
			Meta: domain.Metadata{Author: "bob", CreatedAt: tsPtr(2023, 1, 2)},
		},
		{
			ID: "r-1", Kind: domain.KindRelease, Title: "v1.0.0",
			Meta: domain.Metadata{CreatedAt: tsPtr(2023, 1, 1), PublishedAt: tsPtr(2023, 1, 1)},
		},
		{
			ID: "r-2", Kind: domain.KindRelease, Title: "v1.1.0",
			Meta: domain.Metadata{CreatedAt: tsPtr(2023, 5, 28), PublishedAt: tsPtr(2023, 6, 1)},
		},
	}
}

// requireOneAnswer asserts exactly one answer of the given type and
// returns it.
func requireOneAnswer(t *testing.T, answers []domain.Artifact, typ domain.AnswerType) domain.Artifact {
	t.Helper()

	var found []domain.Artifact
	for _, a := range answers {
		require.True(t, a.IsAnswer())
		require.NotNil(t, a.Answer)
		if a.Answer.Type == typ {
			found = append(found, a)
		}
	}
	require.Len(t, found, 1, "answers of type %s", typ)
	return found[0]
}

func TestAnalyzeIntents_OpenIssueCount(t *testing.T) {
	answers := AnalyzeIntents(mustQuery(t, "How many open issues are there?"), intentFixture())

	answer := requireOneAnswer(t, answers, domain.AnswerCount)
	assert.Equal(t, 3, answer.Answer.Count)
	assert.Equal(t, 5, answer.Answer.Total)
	assert.Equal(t, "Open issues: 3", answer.Title)
}

func TestAnalyzeIntents_ClosedIssueCount(t *testing.T) {
	answers := AnalyzeIntents(mustQuery(t, "how many closed issues?"), intentFixture())

	answer := requireOneAnswer(t, answers, domain.AnswerCount)
	assert.Equal(t, 2, answer.Answer.Count)
	assert.Equal(t, 5, answer.Answer.Total)
}

func TestAnalyzeIntents_Contributors(t *testing.T) {
	answers := AnalyzeIntents(mustQuery(t, "who are the contributors?"), intentFixture())

	answer := requireOneAnswer(t, answers, domain.AnswerList)
	assert.Equal(t, []string{"alice", "bob", "carol"}, answer.Answer.Names)
}

func TestAnalyzeIntents_ContributorsCapped(t *testing.T) {
	artifacts := []domain.Artifact{{
		ID: "repo-1", Kind: domain.KindRepo, Title: "acme/widgets",
		Meta: domain.Metadata{
			Contributors: []string{"a", "b", "c", "d", "e", "f", "g"},
		},
	}}

	answers := AnalyzeIntents(mustQuery(t, "show contributors"), artifacts)

	answer := requireOneAnswer(t, answers, domain.AnswerList)
	assert.Len(t, answer.Answer.Names, contributorLimit)
}

func TestAnalyzeIntents_PrimaryLanguage(t *testing.T) {
	answers := AnalyzeIntents(mustQuery(t, "what language is this written in?"), intentFixture())

	answer := requireOneAnswer(t, answers, domain.AnswerOverview)
	assert.Equal(t, "Go", answer.Answer.Language)
}

func TestAnalyzeIntents_LatestCommit(t *testing.T) {
	answers := AnalyzeIntents(mustQuery(t, "latest commit"), intentFixture())

	answer := requireOneAnswer(t, answers, domain.AnswerLatest)
	require.Len(t, answer.Answer.Related, 1)
	assert.Equal(t, "c-1", answer.Answer.Related[0].ID)
}

func TestAnalyzeIntents_LatestReleaseByPublishDate(t *testing.T) {
	answers := AnalyzeIntents(mustQuery(t, "what is the latest release?"), intentFixture())

	answer := requireOneAnswer(t, answers, domain.AnswerLatest)
	require.Len(t, answer.Answer.Related, 1)
	assert.Equal(t, "r-2", answer.Answer.Related[0].ID)
	assert.Contains(t, answer.Description, "2023-06-01")
}

func TestAnalyzeIntents_PullRequestCount(t *testing.T) {
	answers := AnalyzeIntents(mustQuery(t, "open pull requests"), intentFixture())

	answer := requireOneAnswer(t, answers, domain.AnswerFilteredCount)
	assert.Equal(t, 2, answer.Answer.Count)
	assert.Equal(t, 5, answer.Answer.Total)
}

func TestAnalyzeIntents_RepoOverview(t *testing.T) {
	answers := AnalyzeIntents(mustQuery(t, "repository overview"), intentFixture())

	answer := requireOneAnswer(t, answers, domain.AnswerOverview)
	assert.Equal(t, 120, answer.Answer.Stars)
	assert.Equal(t, 14, answer.Answer.Forks)
	assert.Equal(t, 5, answer.Answer.Issues)
	assert.Equal(t, 5, answer.Answer.PullRequests)
	assert.Equal(t, 2, answer.Answer.Commits)
}

func TestAnalyzeIntents_RecentActivityCapped(t *testing.T) {
	answers := AnalyzeIntents(mustQuery(t, "recent activity"), intentFixture())

	answer := requireOneAnswer(t, answers, domain.AnswerActivity)
	assert.Len(t, answer.Answer.Related, activityLimit)
}

func TestAnalyzeIntents_BugIssues(t *testing.T) {
	answers := AnalyzeIntents(mustQuery(t, "show me bugs"), intentFixture())

	answer := requireOneAnswer(t, answers, domain.AnswerList)
	// "Crash on startup" (bug label), "Fix memory leak" (bug label and
	// "fix" in the title).
	assert.Equal(t, 2, answer.Answer.Count)
}

func TestAnalyzeIntents_FeatureRequests(t *testing.T) {
	answers := AnalyzeIntents(mustQuery(t, "feature requests"), intentFixture())

	answer := requireOneAnswer(t, answers, domain.AnswerList)
	require.Len(t, answer.Answer.Related, 1)
	assert.Equal(t, "i-2", answer.Answer.Related[0].ID)
}

func TestAnalyzeIntents_NoMatchProducesNoAnswers(t *testing.T) {
	answers := AnalyzeIntents(mustQuery(t, "search for widgets"), intentFixture())

	assert.Empty(t, answers)
}

func TestAnalyzeIntents_MissingDataProducesNoAnswer(t *testing.T) {
	queries := []string{
		"how many open issues?",
		"who are the contributors?",
		"latest release",
		"latest commit",
		"open pull requests",
		"repository overview",
		"recent activity",
	}

	for _, text := range queries {
		assert.Empty(t, AnalyzeIntents(mustQuery(t, text), nil), "query %q", text)
	}
}

func TestAnalyzeIntents_DoesNotMutateInput(t *testing.T) {
	artifacts := intentFixture()
	before := make([]domain.Artifact, len(artifacts))
	copy(before, artifacts)

	AnalyzeIntents(mustQuery(t, "repository overview and recent activity"), artifacts)

	assert.Equal(t, before, artifacts)
}
