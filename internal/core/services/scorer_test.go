package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/worklens/internal/core/domain"
)

func mustQuery(t *testing.T, text string) domain.Query {
	t.Helper()
	q, err := domain.NewQuery(text, domain.Filter{})
	require.NoError(t, err)
	return q
}

func TestScore_ExactSubstringMatch(t *testing.T) {
	a := &domain.Artifact{
		Kind:  domain.KindIssue,
		Title: "Crash when parsing empty config",
	}

	score := Score(a, mustQuery(t, "parsing empty config"))

	// Exact match alone caps the field at 1.0.
	assert.InDelta(t, 1.0, score, 0.001)
}

func TestScore_TokenMatches(t *testing.T) {
	a := &domain.Artifact{
		Kind:  domain.KindIssue,
		Title: "Improve ranking speed",
	}

	// Two tokens of length >= 3 match the title, no exact match.
	score := Score(a, mustQuery(t, "ranking speed regression"))

	assert.InDelta(t, 0.6, score, 0.001)
}

func TestScore_ShortTokensIgnored(t *testing.T) {
	a := &domain.Artifact{
		Kind:  domain.KindCommit,
		Title: "go io fixes",
	}

	// "go" and "io" are below the minimum token length.
	score := Score(a, mustQuery(t, "go io"))

	assert.Zero(t, score)
}

func TestScore_KeywordAffinity(t *testing.T) {
	a := &domain.Artifact{
		Kind:  domain.KindIssue,
		Title: "Unrelated title",
		Meta:  domain.Metadata{Keywords: []string{"issue", "bug"}},
	}

	// "bugs" contains keyword "bug": one affinity pair.
	score := Score(a, mustQuery(t, "bugs"))

	assert.InDelta(t, 0.4, score, 0.001)
}

func TestScore_DescriptionDiscounted(t *testing.T) {
	a := &domain.Artifact{
		Kind:        domain.KindDocument,
		Title:       "Something else",
		Description: "deployment checklist for the new cluster",
	}

	// Exact description match: field score 1.0, weighted to 0.8.
	score := Score(a, mustQuery(t, "deployment checklist"))

	assert.InDelta(t, 0.8, score, 0.001)
}

func TestScore_TitleWinsOverDescription(t *testing.T) {
	a := &domain.Artifact{
		Kind:        domain.KindIssue,
		Title:       "deployment checklist",
		Description: "deployment checklist",
	}

	score := Score(a, mustQuery(t, "deployment checklist"))

	// max(1.0, 1.0*0.8) = 1.0
	assert.InDelta(t, 1.0, score, 0.001)
}

func TestScore_PatternBonusAppliesOnce(t *testing.T) {
	a := &domain.Artifact{
		Kind:  domain.KindIssue,
		Title: "Totally unrelated",
	}

	// "open issues" matches the open-issue query pattern (+0.9) but
	// nothing lexically; clamped within the scorer range either way.
	score := Score(a, mustQuery(t, "open issues"))

	assert.InDelta(t, 0.9, score, 0.001)
}

func TestScore_AlwaysWithinScorerRange(t *testing.T) {
	artifacts := []*domain.Artifact{
		{Kind: domain.KindIssue, Title: "open issues everywhere open issues",
			Description: "open issues open issues open issues",
			Meta:        domain.Metadata{Keywords: []string{"issue", "open", "bug", "problem"}}},
		{Kind: domain.KindCommit, Title: "x"},
		{Kind: domain.KindRelease, Title: "latest release v2", Meta: domain.Metadata{Keywords: []string{"release", "version"}}},
	}
	queries := []string{
		"open issues",
		"latest release version",
		"completely unrelated text",
		"a",
	}

	for _, text := range queries {
		q := mustQuery(t, text)
		for _, a := range artifacts {
			score := Score(a, q)
			assert.GreaterOrEqual(t, score, 0.0, "query %q", text)
			assert.LessOrEqual(t, score, 1.0, "query %q", text)
		}
	}
}
