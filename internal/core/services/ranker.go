package services

import (
	"math"
	"sort"

	"github.com/custodia-labs/worklens/internal/core/domain"
)

const (
	// minRelevance is the exclusive cutoff below which non-answer
	// artifacts are dropped. Answers are exempt.
	minRelevance = 0.1

	// tieBreakWindow is the score distance within which recency decides
	// the order instead of the score.
	tieBreakWindow = 0.2
)

// Rank merges answers and scored artifacts into the final result list.
// Answers always precede non-answers regardless of score. Non-answers are
// filtered by kind group and by the minimum-relevance cutoff. Within each
// bucket the order is score descending, with recency breaking near-ties.
// Inputs are not mutated; a new list is returned.
func Rank(answers, artifacts []domain.Artifact, filter domain.Filter) []domain.Artifact {
	ranked := make([]domain.Artifact, 0, len(answers)+len(artifacts))
	ranked = append(ranked, answers...)
	sortBucket(ranked)

	kept := make([]domain.Artifact, 0, len(artifacts))
	for _, a := range artifacts {
		if !filter.Type.Matches(a.Kind) {
			continue
		}
		if a.Score <= minRelevance {
			continue
		}
		kept = append(kept, a)
	}
	sortBucket(kept)

	ranked = append(ranked, kept...)

	if filter.Limit > 0 && len(ranked) > filter.Limit {
		ranked = ranked[:filter.Limit]
	}

	return ranked
}

// sortBucket orders one bucket in place: score descending, with recency
// descending when two scores are within tieBreakWindow. Missing dates
// sort as the epoch, so dated artifacts win near-ties.
func sortBucket(bucket []domain.Artifact) {
	sort.SliceStable(bucket, func(i, j int) bool {
		si, sj := bucket[i].Score, bucket[j].Score
		if math.Abs(si-sj) <= tieBreakWindow {
			ti := bucket[i].Meta.Timestamp()
			tj := bucket[j].Meta.Timestamp()
			if !ti.Equal(tj) {
				return ti.After(tj)
			}
			return false
		}
		return si > sj
	})
}
