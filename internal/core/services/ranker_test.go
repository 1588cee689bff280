package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/worklens/internal/core/domain"
)

func answerArtifact(title string, score float64) domain.Artifact {
	return domain.Artifact{
		ID: title, Kind: domain.KindAnswer, Title: title, Score: score,
		Answer: &domain.Answer{Type: domain.AnswerCount},
	}
}

func scoredArtifact(id string, kind domain.Kind, score float64, created *time.Time) domain.Artifact {
	return domain.Artifact{
		ID: id, Kind: kind, Title: id, Score: score,
		Meta: domain.Metadata{CreatedAt: created},
	}
}

func TestRank_AnswersAlwaysFirst(t *testing.T) {
	answers := []domain.Artifact{answerArtifact("answer", 1.0)}
	artifacts := []domain.Artifact{
		scoredArtifact("high", domain.KindIssue, 2.9, nil),
		scoredArtifact("low", domain.KindIssue, 0.5, nil),
	}

	ranked := Rank(answers, artifacts, domain.Filter{})

	require.Len(t, ranked, 3)
	assert.Equal(t, "answer", ranked[0].ID)
	assert.Equal(t, "high", ranked[1].ID)
	assert.Equal(t, "low", ranked[2].ID)
}

func TestRank_MinimumRelevanceCutoffIsExclusive(t *testing.T) {
	artifacts := []domain.Artifact{
		scoredArtifact("at-cutoff", domain.KindIssue, 0.1, nil),
		scoredArtifact("just-above", domain.KindIssue, 0.1001, nil),
	}

	ranked := Rank(nil, artifacts, domain.Filter{})

	require.Len(t, ranked, 1)
	assert.Equal(t, "just-above", ranked[0].ID)
}

func TestRank_AnswersExemptFromCutoff(t *testing.T) {
	answers := []domain.Artifact{answerArtifact("weak-answer", 0.05)}

	ranked := Rank(answers, nil, domain.Filter{})

	require.Len(t, ranked, 1)
	assert.Equal(t, "weak-answer", ranked[0].ID)
}

func TestRank_TypeFilter(t *testing.T) {
	answers := []domain.Artifact{answerArtifact("answer", 1.0)}
	artifacts := []domain.Artifact{
		scoredArtifact("issue", domain.KindIssue, 1.0, nil),
		scoredArtifact("member", domain.KindMember, 1.0, nil),
		scoredArtifact("doc", domain.KindDocument, 1.0, nil),
	}

	ranked := Rank(answers, artifacts, domain.Filter{Type: domain.FilterMembers})

	require.Len(t, ranked, 2)
	assert.Equal(t, "answer", ranked[0].ID)
	assert.Equal(t, "member", ranked[1].ID)
}

func TestRank_ScoreDescending(t *testing.T) {
	artifacts := []domain.Artifact{
		scoredArtifact("mid", domain.KindIssue, 1.5, nil),
		scoredArtifact("top", domain.KindIssue, 2.5, nil),
		scoredArtifact("bottom", domain.KindIssue, 0.5, nil),
	}

	ranked := Rank(nil, artifacts, domain.Filter{})

	require.Len(t, ranked, 3)
	assert.Equal(t, "top", ranked[0].ID)
	assert.Equal(t, "mid", ranked[1].ID)
	assert.Equal(t, "bottom", ranked[2].ID)
}

func TestRank_NearTieBrokenByRecency(t *testing.T) {
	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	artifacts := []domain.Artifact{
		scoredArtifact("older-higher", domain.KindIssue, 1.0, &older),
		scoredArtifact("newer-lower", domain.KindIssue, 0.9, &newer),
	}

	ranked := Rank(nil, artifacts, domain.Filter{})

	// Scores differ by 0.1 (within the 0.2 window): recency wins.
	require.Len(t, ranked, 2)
	assert.Equal(t, "newer-lower", ranked[0].ID)
	assert.Equal(t, "older-higher", ranked[1].ID)
}

func TestRank_MissingDateSortsAsEpoch(t *testing.T) {
	dated := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	artifacts := []domain.Artifact{
		scoredArtifact("undated", domain.KindIssue, 1.0, nil),
		scoredArtifact("dated", domain.KindIssue, 1.0, &dated),
	}

	ranked := Rank(nil, artifacts, domain.Filter{})

	require.Len(t, ranked, 2)
	assert.Equal(t, "dated", ranked[0].ID)
}

func TestRank_LimitTruncates(t *testing.T) {
	answers := []domain.Artifact{answerArtifact("answer", 1.0)}
	artifacts := []domain.Artifact{
		scoredArtifact("a", domain.KindIssue, 2.0, nil),
		scoredArtifact("b", domain.KindIssue, 1.5, nil),
		scoredArtifact("c", domain.KindIssue, 1.0, nil),
	}

	ranked := Rank(answers, artifacts, domain.Filter{Limit: 2})

	require.Len(t, ranked, 2)
	assert.Equal(t, "answer", ranked[0].ID)
	assert.Equal(t, "a", ranked[1].ID)
}

func TestRank_DoesNotMutateInputs(t *testing.T) {
	artifacts := []domain.Artifact{
		scoredArtifact("low", domain.KindIssue, 0.5, nil),
		scoredArtifact("high", domain.KindIssue, 2.0, nil),
	}

	Rank(nil, artifacts, domain.Filter{})

	assert.Equal(t, "low", artifacts[0].ID)
	assert.Equal(t, "high", artifacts[1].ID)
}

func TestRank_Deterministic(t *testing.T) {
	created := time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)
	answers := []domain.Artifact{answerArtifact("answer", 1.0)}
	artifacts := []domain.Artifact{
		scoredArtifact("a", domain.KindIssue, 1.0, &created),
		scoredArtifact("b", domain.KindIssue, 1.0, &created),
		scoredArtifact("c", domain.KindCommit, 0.95, &created),
	}

	first := Rank(answers, artifacts, domain.Filter{})
	second := Rank(answers, artifacts, domain.Filter{})

	assert.Equal(t, first, second)
}
