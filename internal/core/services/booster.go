package services

import (
	"math"
	"strings"
	"time"

	"github.com/custodia-labs/worklens/internal/core/domain"
)

// Boost weights. Boosts are additive on top of the scorer output and are
// deliberately allowed past the scorer's 1.0 clamp: they exist to separate
// near-ties. Only the combined score is clamped, to maxCombinedScore.
const (
	// kindBoost applies when the query names the artifact's kind.
	kindBoost = 0.5

	// stateBoost applies when the query names the artifact's state.
	stateBoost = 0.3

	// recentBoost applies to artifacts younger than recentWindow.
	recentBoost = 0.4

	// nearBoost applies to artifacts younger than nearWindow
	// (and older than recentWindow).
	nearBoost = 0.2

	// maxCombinedScore caps the final score after boosting.
	maxCombinedScore = 3.0

	recentWindow = 30 * 24 * time.Hour
	nearWindow   = 90 * 24 * time.Hour
)

// kindTokens maps single-word query tokens to the kind they name.
var kindTokens = map[string]domain.Kind{
	"issue":        domain.KindIssue,
	"issues":       domain.KindIssue,
	"pr":           domain.KindPullRequest,
	"prs":          domain.KindPullRequest,
	"commit":       domain.KindCommit,
	"commits":      domain.KindCommit,
	"release":      domain.KindRelease,
	"releases":     domain.KindRelease,
	"repo":         domain.KindRepo,
	"repos":        domain.KindRepo,
	"repository":   domain.KindRepo,
	"repositories": domain.KindRepo,
	"document":     domain.KindDocument,
	"documents":    domain.KindDocument,
	"doc":          domain.KindDocument,
	"docs":         domain.KindDocument,
	"member":       domain.KindMember,
	"members":      domain.KindMember,
}

// stateTokens are the state words the booster recognises.
var stateTokens = map[string]bool{
	"open":   true,
	"closed": true,
	"merged": true,
}

// recencyTokens are the recency words the booster recognises.
var recencyTokens = map[string]bool{
	"recent": true,
	"latest": true,
	"new":    true,
}

// Boost computes the additive contextual boost for an artifact.
// Each rule is evaluated independently: kind alignment, state alignment,
// and recency. Requires Meta.State for the state rule and a non-zero
// Meta.Timestamp() for the recency rule; absent fields contribute nothing.
func Boost(a *domain.Artifact, q domain.Query, now time.Time) float64 {
	var boost float64
	tokens := q.Tokens()

	if mentionsKind(q, tokens, a.Kind) {
		boost += kindBoost
	}

	if state := mentionedState(tokens); state != "" && matchesState(a, state) {
		boost += stateBoost
	}

	if mentionsRecency(tokens) {
		if ts := a.Meta.Timestamp(); !ts.IsZero() {
			switch age := now.Sub(ts); {
			case age < recentWindow:
				boost += recentBoost
			case age < nearWindow:
				boost += nearBoost
			}
		}
	}

	return boost
}

// CombinedScore applies the booster on top of the scorer and clamps the
// result to maxCombinedScore.
func CombinedScore(a *domain.Artifact, q domain.Query, now time.Time) float64 {
	combined := Score(a, q) + Boost(a, q, now)
	if combined < 0 {
		return 0
	}
	return math.Min(combined, maxCombinedScore)
}

func mentionsKind(q domain.Query, tokens []string, kind domain.Kind) bool {
	if kind == domain.KindPullRequest && strings.Contains(q.Lower(), "pull request") {
		return true
	}
	for _, token := range tokens {
		if kindTokens[token] == kind {
			return true
		}
	}
	return false
}

// mentionedState returns the first recognised state word in the query.
func mentionedState(tokens []string) string {
	for _, token := range tokens {
		if stateTokens[token] {
			return token
		}
	}
	return ""
}

func matchesState(a *domain.Artifact, state string) bool {
	if a.Meta.State == state {
		return true
	}
	if state == "merged" && a.Meta.Merged != nil && *a.Meta.Merged {
		return true
	}
	return false
}

func mentionsRecency(tokens []string) bool {
	for _, token := range tokens {
		if recencyTokens[token] {
			return true
		}
	}
	return false
}
