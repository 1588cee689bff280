package services

import (
	"math"
	"regexp"
	"strings"

	"github.com/custodia-labs/worklens/internal/core/domain"
)

// Scoring weights. The per-field running total is clamped to
// maxLexicalScore before fields are combined; the booster output is
// clamped separately to maxCombinedScore.
const (
	// exactMatchBonus is added when the full query appears in the field.
	exactMatchBonus = 1.0

	// tokenMatchBonus is added per query token found in the field.
	tokenMatchBonus = 0.3

	// keywordMatchBonus is added per token/keyword affinity pair.
	keywordMatchBonus = 0.4

	// descriptionWeight discounts description matches against title matches.
	descriptionWeight = 0.8

	// minTokenLength is the shortest token that counts for substring matches.
	minTokenLength = 3

	// maxLexicalScore caps the scorer stage output.
	maxLexicalScore = 1.0
)

// queryPattern is a semantic query shape with a fixed bonus, applied once
// per match to the artifact-level score.
type queryPattern struct {
	re    *regexp.Regexp
	bonus float64
}

var queryPatterns = []queryPattern{
	{regexp.MustCompile(`(open|current|active)\s+(issue|bug|problem)s?`), 0.9},
	{regexp.MustCompile(`(recent|latest|new)\s+(commit|change|update)s?`), 0.9},
	{regexp.MustCompile(`(open|pending|active)\s+(pull request|pr|merge)s?`), 0.8},
	{regexp.MustCompile(`(latest|current|newest)\s+(release|version)s?`), 0.8},
	{regexp.MustCompile(`(main|primary)\s+(language|stack|framework)`), 0.8},
}

// Score computes the lexical relevance of an artifact for a query.
// Title and description are scored independently, each clamped to
// maxLexicalScore, and combined as max(title, description*0.8). Semantic
// query-pattern bonuses are added once at the artifact level, and the
// result is clamped back to maxLexicalScore.
func Score(a *domain.Artifact, q domain.Query) float64 {
	lowerQuery := q.Lower()
	tokens := q.Tokens()

	title := fieldScore(strings.ToLower(a.Title), lowerQuery, tokens, a.Meta.Keywords)
	description := fieldScore(strings.ToLower(a.Description), lowerQuery, tokens, a.Meta.Keywords)

	score := math.Max(title, description*descriptionWeight)

	for _, p := range queryPatterns {
		if p.re.MatchString(lowerQuery) {
			score += p.bonus
		}
	}

	return math.Min(score, maxLexicalScore)
}

// fieldScore scores one lowercased field against the query.
func fieldScore(text, lowerQuery string, tokens, keywords []string) float64 {
	var score float64

	if text != "" && strings.Contains(text, lowerQuery) {
		score += exactMatchBonus
	}

	for _, token := range tokens {
		if len(token) >= minTokenLength && strings.Contains(text, token) {
			score += tokenMatchBonus
		}
	}

	// Keyword affinity: a token and a semantic tag match when either
	// contains the other.
	for _, token := range tokens {
		for _, keyword := range keywords {
			if keyword == "" {
				continue
			}
			if strings.Contains(keyword, token) || strings.Contains(token, keyword) {
				score += keywordMatchBonus
			}
		}
	}

	return math.Min(score, maxLexicalScore)
}
