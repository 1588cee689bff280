package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/worklens/internal/core/domain"
)

var boostNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) *time.Time {
	t := boostNow.Add(-time.Duration(n) * 24 * time.Hour)
	return &t
}

func TestBoost_KindMention(t *testing.T) {
	tests := []struct {
		name  string
		query string
		kind  domain.Kind
		want  float64
	}{
		{"issue token", "show issues", domain.KindIssue, 0.5},
		{"pr token", "open prs", domain.KindPullRequest, 0.5},
		{"pull request phrase", "pull request review", domain.KindPullRequest, 0.5},
		{"commit token", "commit history", domain.KindCommit, 0.5},
		{"repository token", "the repository", domain.KindRepo, 0.5},
		{"no mention", "anything else", domain.KindRelease, 0},
		{"kind mismatch", "show issues", domain.KindCommit, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &domain.Artifact{Kind: tt.kind, Title: "x"}
			assert.InDelta(t, tt.want, Boost(a, mustQuery(t, tt.query), boostNow), 0.001)
		})
	}
}

func TestBoost_StateMention(t *testing.T) {
	merged := true

	tests := []struct {
		name  string
		query string
		meta  domain.Metadata
		want  float64
	}{
		{"open matches", "open things", domain.Metadata{State: "open"}, 0.3},
		{"closed matches", "closed things", domain.Metadata{State: "closed"}, 0.3},
		{"merged via state", "merged things", domain.Metadata{State: "merged"}, 0.3},
		{"merged via flag", "merged things", domain.Metadata{Merged: &merged}, 0.3},
		{"state mismatch", "open things", domain.Metadata{State: "closed"}, 0},
		{"state absent", "open things", domain.Metadata{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &domain.Artifact{Kind: domain.KindDocument, Title: "x", Meta: tt.meta}
			assert.InDelta(t, tt.want, Boost(a, mustQuery(t, tt.query), boostNow), 0.001)
		})
	}
}

func TestBoost_Recency(t *testing.T) {
	tests := []struct {
		name string
		meta domain.Metadata
		want float64
	}{
		{"under 30 days", domain.Metadata{CreatedAt: daysAgo(10)}, 0.4},
		{"under 90 days", domain.Metadata{CreatedAt: daysAgo(60)}, 0.2},
		{"older than 90 days", domain.Metadata{CreatedAt: daysAgo(120)}, 0},
		{"published preferred", domain.Metadata{CreatedAt: daysAgo(120), PublishedAt: daysAgo(5)}, 0.4},
		{"no timestamp", domain.Metadata{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &domain.Artifact{Kind: domain.KindDocument, Title: "x", Meta: tt.meta}
			assert.InDelta(t, tt.want, Boost(a, mustQuery(t, "recent docs"), boostNow), 0.001)
		})
	}
}

func TestBoost_NoRecencyWordNoBoost(t *testing.T) {
	a := &domain.Artifact{
		Kind: domain.KindDocument, Title: "x",
		Meta: domain.Metadata{CreatedAt: daysAgo(1)},
	}

	assert.Zero(t, Boost(a, mustQuery(t, "some docs"), boostNow))
}

func TestBoost_RulesAreAdditive(t *testing.T) {
	a := &domain.Artifact{
		Kind:  domain.KindIssue,
		Title: "x",
		Meta:  domain.Metadata{State: "open", CreatedAt: daysAgo(3)},
	}

	// Kind (+0.5) + state (+0.3) + recency (+0.4).
	boost := Boost(a, mustQuery(t, "new open issues"), boostNow)

	assert.InDelta(t, 1.2, boost, 0.001)
}

func TestCombinedScore_ClampedToMax(t *testing.T) {
	a := &domain.Artifact{
		Kind:        domain.KindIssue,
		Title:       "open issues open issues",
		Description: "open issues",
		Meta: domain.Metadata{
			State:     "open",
			CreatedAt: daysAgo(1),
			Keywords:  []string{"issue", "open", "bug"},
		},
	}

	combined := CombinedScore(a, mustQuery(t, "new open issues"), boostNow)

	assert.LessOrEqual(t, combined, 3.0)
	assert.GreaterOrEqual(t, combined, 0.0)
}

func TestCombinedScore_OpenStateSeparatesPRs(t *testing.T) {
	merged := false
	open := &domain.Artifact{
		Kind: domain.KindPullRequest, Title: "PR #1: add cache",
		Meta: domain.Metadata{State: "open", Merged: &merged},
	}
	closed := &domain.Artifact{
		Kind: domain.KindPullRequest, Title: "PR #2: add cache",
		Meta: domain.Metadata{State: "closed", Merged: &merged},
	}

	q := mustQuery(t, "open pull requests")

	diff := CombinedScore(open, q, boostNow) - CombinedScore(closed, q, boostNow)
	assert.InDelta(t, 0.3, diff, 0.001)
}
