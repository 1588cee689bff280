package services

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/worklens/internal/core/domain"
	"github.com/custodia-labs/worklens/internal/logger"
)

// answerScore is the fixed score assigned to synthesised answers.
// Answers sort before all non-answers regardless of score, so this only
// orders answers among themselves.
const answerScore = 1.0

const (
	// contributorLimit caps the contributors list answer.
	contributorLimit = 5

	// activityLimit caps the recent-activity answer.
	activityLimit = 5
)

// intentHandler derives an answer from the current artifact set, or
// returns nil when the relevant data is absent.
type intentHandler func(artifacts []domain.Artifact) *domain.Artifact

// intent is one entry of the intent table: a recognised question
// category with its trigger patterns (OR semantics) and handler.
type intent struct {
	name     string
	patterns []*regexp.Regexp
	handle   intentHandler
}

// intentTable is the ordered table of recognised question intents.
// Intents are not mutually exclusive: every entry whose patterns match
// the lowercased query runs, and each may contribute an answer.
var intentTable = []intent{
	{
		name: "open-issue-count",
		patterns: compile(
			`how many.*open.*issues?`,
			`open issues? count`,
			`number of open issues?`,
		),
		handle: countIssuesByState("open"),
	},
	{
		name: "closed-issue-count",
		patterns: compile(
			`how many.*(closed|resolved).*issues?`,
			`(closed|resolved) issues? count`,
			`number of (closed|resolved) issues?`,
		),
		handle: countIssuesByState("closed"),
	},
	{
		name: "contributors",
		patterns: compile(
			`who (are|is) the (contributor|maintainer|author)s?`,
			`(list|show|top).*(contributor|maintainer)s?`,
		),
		handle: listContributors,
	},
	{
		name: "primary-language",
		patterns: compile(
			`(what|which) (language|tech)`,
			`tech stack`,
			`(main|primary) language`,
			`written in`,
		),
		handle: primaryLanguage,
	},
	{
		name: "latest-commit",
		patterns: compile(
			`(latest|last|recent|newest) commits?`,
			`most recent commit`,
		),
		handle: latestCommit,
	},
	{
		name: "latest-release",
		patterns: compile(
			`(latest|last|current|newest) (release|version)`,
		),
		handle: latestRelease,
	},
	{
		name: "pull-request-count",
		patterns: compile(
			`how many.*(pull requests?|prs?)\b`,
			`(pull requests?|prs?) count`,
			`open (pull requests?|prs?)\b`,
		),
		handle: countPullRequests,
	},
	{
		name: "repo-overview",
		patterns: compile(
			`(repo|repository|project).{0,20}(stats|overview|summary)`,
			`(stats|overview|summary).{0,20}(repo|repository|project)`,
		),
		handle: repoOverview,
	},
	{
		name: "recent-activity",
		patterns: compile(
			`recent activity`,
			`what.{0,3}s (happening|going on|new)\b`,
			`latest (changes|updates)`,
		),
		handle: recentActivity,
	},
	{
		name: "bug-issues",
		patterns: compile(
			`\bbugs?\b`,
			`error reports?`,
			`\bproblems?\b`,
		),
		handle: matchingIssues("Bug reports", []string{"bug", "error", "fix", "crash"}),
	},
	{
		name: "feature-requests",
		patterns: compile(
			`feature requests?`,
			`enhancements?`,
			`improvements?`,
		),
		handle: matchingIssues("Feature requests", []string{"feature", "enhancement", "improvement"}),
	},
}

// AnalyzeIntents evaluates the query against the intent table and
// returns the answers produced by every matching handler.
func AnalyzeIntents(q domain.Query, artifacts []domain.Artifact) []domain.Artifact {
	lower := q.Lower()

	var answers []domain.Artifact
	for _, entry := range intentTable {
		if !matchesAny(entry.patterns, lower) {
			continue
		}
		if answer := entry.handle(artifacts); answer != nil {
			logger.Debug("Intent %q matched: %s", entry.name, answer.Title)
			answers = append(answers, *answer)
		}
	}

	return answers
}

func compile(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}

func matchesAny(patterns []*regexp.Regexp, query string) bool {
	for _, re := range patterns {
		if re.MatchString(query) {
			return true
		}
	}
	return false
}

// newAnswer builds an answer artifact with the fixed answer score.
func newAnswer(title, description string, payload domain.Answer) *domain.Artifact {
	return &domain.Artifact{
		ID:          uuid.New().String(),
		Kind:        domain.KindAnswer,
		Title:       title,
		Description: description,
		Score:       answerScore,
		Answer:      &payload,
	}
}

func ofKind(artifacts []domain.Artifact, kind domain.Kind) []domain.Artifact {
	var matched []domain.Artifact
	for _, a := range artifacts {
		if a.Kind == kind {
			matched = append(matched, a)
		}
	}
	return matched
}

func firstOfKind(artifacts []domain.Artifact, kind domain.Kind) *domain.Artifact {
	for i := range artifacts {
		if artifacts[i].Kind == kind {
			return &artifacts[i]
		}
	}
	return nil
}

// countIssuesByState answers "how many open/closed issues".
// Returns nil when the artifact set contains no issues at all.
func countIssuesByState(state string) intentHandler {
	return func(artifacts []domain.Artifact) *domain.Artifact {
		issues := ofKind(artifacts, domain.KindIssue)
		if len(issues) == 0 {
			return nil
		}

		count := 0
		for _, issue := range issues {
			if issue.Meta.State == state {
				count++
			}
		}

		label := strings.ToUpper(state[:1]) + state[1:]
		return newAnswer(
			fmt.Sprintf("%s issues: %d", label, count),
			fmt.Sprintf("There are %d %s issues out of %d total.", count, state, len(issues)),
			domain.Answer{Type: domain.AnswerCount, Count: count, Total: len(issues)},
		)
	}
}

// listContributors answers "who are the contributors" from repo metadata.
// The list may be empty when the repository carries no contributor data.
func listContributors(artifacts []domain.Artifact) *domain.Artifact {
	repo := firstOfKind(artifacts, domain.KindRepo)
	if repo == nil {
		return nil
	}

	names := repo.Meta.Contributors
	if len(names) > contributorLimit {
		names = names[:contributorLimit]
	}

	description := "No contributor data available."
	if len(names) > 0 {
		description = strings.Join(names, ", ")
	}

	return newAnswer(
		"Top contributors",
		description,
		domain.Answer{Type: domain.AnswerList, Names: names, Count: len(names)},
	)
}

// primaryLanguage answers "what language is this written in".
func primaryLanguage(artifacts []domain.Artifact) *domain.Artifact {
	repo := firstOfKind(artifacts, domain.KindRepo)
	if repo == nil || repo.Meta.Language == "" {
		return nil
	}

	return newAnswer(
		"Primary language: "+repo.Meta.Language,
		fmt.Sprintf("%s is primarily written in %s.", repo.Title, repo.Meta.Language),
		domain.Answer{Type: domain.AnswerOverview, Language: repo.Meta.Language},
	)
}

// latestCommit answers "latest commit" with the commit whose CreatedAt
// is maximal.
func latestCommit(artifacts []domain.Artifact) *domain.Artifact {
	commits := ofKind(artifacts, domain.KindCommit)
	if len(commits) == 0 {
		return nil
	}

	latest := commits[0]
	for _, c := range commits[1:] {
		if c.Meta.Timestamp().After(latest.Meta.Timestamp()) {
			latest = c
		}
	}

	description := latest.Title
	if latest.Meta.Author != "" {
		description = fmt.Sprintf("%s by %s", latest.Title, latest.Meta.Author)
	}
	if ts := latest.Meta.Timestamp(); !ts.IsZero() {
		description += " on " + ts.Format("2006-01-02")
	}

	return newAnswer(
		"Latest commit: "+latest.Title,
		description,
		domain.Answer{Type: domain.AnswerLatest, Related: []domain.Artifact{latest}},
	)
}

// latestRelease answers "latest release" with the release whose
// PublishedAt (falling back to CreatedAt) is maximal.
func latestRelease(artifacts []domain.Artifact) *domain.Artifact {
	releases := ofKind(artifacts, domain.KindRelease)
	if len(releases) == 0 {
		return nil
	}

	latest := releases[0]
	for _, r := range releases[1:] {
		if r.Meta.Timestamp().After(latest.Meta.Timestamp()) {
			latest = r
		}
	}

	description := latest.Title
	if ts := latest.Meta.Timestamp(); !ts.IsZero() {
		description = fmt.Sprintf("%s, published %s", latest.Title, ts.Format("2006-01-02"))
	}

	return newAnswer(
		"Latest release: "+latest.Title,
		description,
		domain.Answer{Type: domain.AnswerLatest, Related: []domain.Artifact{latest}},
	)
}

// countPullRequests answers "how many pull requests" with open vs total.
func countPullRequests(artifacts []domain.Artifact) *domain.Artifact {
	pulls := ofKind(artifacts, domain.KindPullRequest)
	if len(pulls) == 0 {
		return nil
	}

	open := 0
	for _, pr := range pulls {
		if pr.Meta.State == "open" {
			open++
		}
	}

	return newAnswer(
		fmt.Sprintf("Pull requests: %d open of %d", open, len(pulls)),
		fmt.Sprintf("%d of %d pull requests are open.", open, len(pulls)),
		domain.Answer{Type: domain.AnswerFilteredCount, Count: open, Total: len(pulls)},
	)
}

// repoOverview answers "repository overview" with aggregate statistics.
func repoOverview(artifacts []domain.Artifact) *domain.Artifact {
	repo := firstOfKind(artifacts, domain.KindRepo)
	if repo == nil {
		return nil
	}

	issues := len(ofKind(artifacts, domain.KindIssue))
	pulls := len(ofKind(artifacts, domain.KindPullRequest))
	commits := len(ofKind(artifacts, domain.KindCommit))

	description := fmt.Sprintf(
		"%s: %d stars, %d forks, %d issues, %d pull requests, %d commits.",
		repo.Title, repo.Meta.Stars, repo.Meta.Forks, issues, pulls, commits,
	)
	if repo.Meta.Language != "" {
		description += " Primary language: " + repo.Meta.Language + "."
	}

	return newAnswer(
		"Overview of "+repo.Title,
		description,
		domain.Answer{
			Type:         domain.AnswerOverview,
			Stars:        repo.Meta.Stars,
			Forks:        repo.Meta.Forks,
			Issues:       issues,
			PullRequests: pulls,
			Commits:      commits,
			Language:     repo.Meta.Language,
		},
	)
}

// recentActivity answers "what's happening" with the most recently
// updated artifacts across all kinds.
func recentActivity(artifacts []domain.Artifact) *domain.Artifact {
	if len(artifacts) == 0 {
		return nil
	}

	recent := make([]domain.Artifact, len(artifacts))
	copy(recent, artifacts)

	sort.SliceStable(recent, func(i, j int) bool {
		ui, uj := updatedAt(recent[i]), updatedAt(recent[j])
		if !ui.Equal(uj) {
			return ui.After(uj)
		}
		return recent[i].Meta.Timestamp().After(recent[j].Meta.Timestamp())
	})

	if len(recent) > activityLimit {
		recent = recent[:activityLimit]
	}

	lines := make([]string, len(recent))
	for i, a := range recent {
		lines[i] = fmt.Sprintf("%s (%s)", a.Title, a.Kind)
	}

	return newAnswer(
		"Recent activity",
		strings.Join(lines, "; "),
		domain.Answer{Type: domain.AnswerActivity, Related: recent, Count: len(recent)},
	)
}

// matchingIssues answers label-driven issue questions (bug reports,
// feature requests). An issue matches when any of the tokens appears in
// its labels or title. Returns nil when nothing matches.
func matchingIssues(title string, tokens []string) intentHandler {
	return func(artifacts []domain.Artifact) *domain.Artifact {
		issues := ofKind(artifacts, domain.KindIssue)
		if len(issues) == 0 {
			return nil
		}

		var matched []domain.Artifact
		for _, issue := range issues {
			if issueMentions(issue, tokens) {
				matched = append(matched, issue)
			}
		}
		if len(matched) == 0 {
			return nil
		}

		lines := make([]string, len(matched))
		for i, issue := range matched {
			lines[i] = issue.Title
		}

		return newAnswer(
			fmt.Sprintf("%s: %d", title, len(matched)),
			strings.Join(lines, "; "),
			domain.Answer{Type: domain.AnswerList, Related: matched, Count: len(matched)},
		)
	}
}

func issueMentions(issue domain.Artifact, tokens []string) bool {
	lowerTitle := strings.ToLower(issue.Title)
	for _, token := range tokens {
		if strings.Contains(lowerTitle, token) {
			return true
		}
		for _, label := range issue.Meta.Labels {
			if strings.Contains(strings.ToLower(label), token) {
				return true
			}
		}
	}
	return false
}

// updatedAt is the primary recency key: UpdatedAt when present,
// otherwise the artifact timestamp.
func updatedAt(a domain.Artifact) time.Time {
	if a.Meta.UpdatedAt != nil {
		return *a.Meta.UpdatedAt
	}
	return a.Meta.Timestamp()
}
