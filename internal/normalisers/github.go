package normalisers

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/worklens/internal/core/domain"
)

// Score priors per artifact kind. The scorer stage replaces these; they
// only order artifacts when a query matches nothing.
const (
	priorRepo     = 0.9
	priorIssue    = 0.8
	priorPull     = 0.8
	priorCommit   = 0.6
	priorRelease  = 0.7
	priorDocument = 0.7
	priorMember   = 0.6
)

// commitKeywordWords is how many leading commit message words become keywords.
const commitKeywordWords = 3

// Repo normalises a repository record.
func Repo(rec domain.RepoRecord) (domain.Artifact, bool) {
	title := rec.FullName
	if title == "" && rec.Owner != "" && rec.Name != "" {
		title = rec.Owner + "/" + rec.Name
	}
	if title == "" {
		return domain.Artifact{}, false
	}

	keywords := []string{"repo", "repository"}
	if rec.Language != "" {
		keywords = append(keywords, strings.ToLower(rec.Language))
	}
	for _, topic := range rec.Topics {
		keywords = append(keywords, strings.ToLower(topic))
	}

	created := rec.CreatedAt
	updated := rec.UpdatedAt

	return domain.Artifact{
		ID:          uuid.New().String(),
		Kind:        domain.KindRepo,
		Title:       title,
		Description: rec.Description,
		URL:         rec.URL,
		Score:       priorRepo,
		Meta: domain.Metadata{
			Keywords:     keywords,
			Language:     rec.Language,
			Contributors: rec.Contributors,
			Stars:        rec.Stars,
			Forks:        rec.Forks,
			CreatedAt:    timePtr(created),
			UpdatedAt:    timePtr(updated),
		},
	}, true
}

// Issue normalises an issue record.
func Issue(rec domain.IssueRecord) (domain.Artifact, bool) {
	if rec.Title == "" {
		return domain.Artifact{}, false
	}

	keywords := []string{"issue"}
	if rec.State != "" {
		keywords = append(keywords, strings.ToLower(rec.State))
	}
	for _, label := range rec.Labels {
		keywords = append(keywords, strings.ToLower(label))
	}

	return domain.Artifact{
		ID:          uuid.New().String(),
		Kind:        domain.KindIssue,
		Title:       fmt.Sprintf("Issue #%d: %s", rec.Number, rec.Title),
		Description: rec.Body,
		URL:         rec.URL,
		Score:       priorIssue,
		Meta: domain.Metadata{
			Author:    rec.Author,
			State:     strings.ToLower(rec.State),
			Labels:    rec.Labels,
			Keywords:  keywords,
			Number:    rec.Number,
			CreatedAt: timePtr(rec.CreatedAt),
			UpdatedAt: timePtr(rec.UpdatedAt),
		},
	}, true
}

// PullRequest normalises a pull request record.
func PullRequest(rec domain.PullRequestRecord) (domain.Artifact, bool) {
	if rec.Title == "" {
		return domain.Artifact{}, false
	}

	state := strings.ToLower(rec.State)
	if rec.Merged {
		state = "merged"
	}

	keywords := []string{"pull request", "pr"}
	if state != "" {
		keywords = append(keywords, state)
	}
	for _, label := range rec.Labels {
		keywords = append(keywords, strings.ToLower(label))
	}

	merged := rec.Merged
	draft := rec.Draft

	return domain.Artifact{
		ID:          uuid.New().String(),
		Kind:        domain.KindPullRequest,
		Title:       fmt.Sprintf("PR #%d: %s", rec.Number, rec.Title),
		Description: rec.Body,
		URL:         rec.URL,
		Score:       priorPull,
		Meta: domain.Metadata{
			Author:    rec.Author,
			State:     state,
			Labels:    rec.Labels,
			Keywords:  keywords,
			Number:    rec.Number,
			Merged:    &merged,
			Draft:     &draft,
			CreatedAt: timePtr(rec.CreatedAt),
			UpdatedAt: timePtr(rec.UpdatedAt),
		},
	}, true
}

// Commit normalises a commit record. The title is the first message line.
func Commit(rec domain.CommitRecord) (domain.Artifact, bool) {
	subject := commitSubject(rec.Message)
	if subject == "" {
		return domain.Artifact{}, false
	}

	keywords := []string{"commit"}
	words := strings.Fields(strings.ToLower(subject))
	if len(words) > commitKeywordWords {
		words = words[:commitKeywordWords]
	}
	keywords = append(keywords, words...)

	return domain.Artifact{
		ID:          uuid.New().String(),
		Kind:        domain.KindCommit,
		Title:       subject,
		Description: rec.Message,
		URL:         rec.URL,
		Score:       priorCommit,
		Meta: domain.Metadata{
			Author:    rec.Author,
			Keywords:  keywords,
			CreatedAt: timePtr(rec.CreatedAt),
		},
	}, true
}

// Release normalises a release record.
func Release(rec domain.ReleaseRecord) (domain.Artifact, bool) {
	title := rec.Name
	if title == "" {
		title = rec.TagName
	}
	if title == "" {
		return domain.Artifact{}, false
	}

	keywords := []string{"release", "version"}
	if rec.TagName != "" {
		keywords = append(keywords, strings.ToLower(rec.TagName))
	}

	draft := rec.Draft

	return domain.Artifact{
		ID:          uuid.New().String(),
		Kind:        domain.KindRelease,
		Title:       title,
		Description: rec.Body,
		URL:         rec.URL,
		Score:       priorRelease,
		Meta: domain.Metadata{
			Author:      rec.Author,
			Keywords:    keywords,
			Version:     rec.TagName,
			Draft:       &draft,
			CreatedAt:   timePtr(rec.CreatedAt),
			PublishedAt: rec.PublishedAt,
		},
	}, true
}

// commitSubject returns the first line of a commit message, truncated to
// a display-friendly length.
func commitSubject(message string) string {
	subject := message
	if i := strings.IndexByte(subject, '\n'); i >= 0 {
		subject = subject[:i]
	}
	subject = strings.TrimSpace(subject)
	if len(subject) > 72 {
		subject = subject[:72]
	}
	return subject
}
