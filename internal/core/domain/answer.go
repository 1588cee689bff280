package domain

// AnswerType identifies the category of a synthesised answer.
type AnswerType string

// Answer types.
const (
	// AnswerCount is a single count (e.g. open issues).
	AnswerCount AnswerType = "count"

	// AnswerFilteredCount is a count of a subset against a total
	// (e.g. open pull requests out of all pull requests).
	AnswerFilteredCount AnswerType = "filtered_count"

	// AnswerLatest references the most recent matching artifact.
	AnswerLatest AnswerType = "latest"

	// AnswerList enumerates names or matching artifacts.
	AnswerList AnswerType = "list"

	// AnswerOverview aggregates repository statistics.
	AnswerOverview AnswerType = "overview"

	// AnswerActivity summarises the most recently updated artifacts.
	AnswerActivity AnswerType = "activity"
)

// Answer is the structured payload of an answer artifact. It carries the
// data needed to render the answer; unused fields are left at their zero
// value.
type Answer struct {
	// Type is the answer category.
	Type AnswerType

	// Count is the primary count for count-style answers.
	Count int

	// Total is the reference total for filtered counts.
	Total int

	// Names holds distinct names for list answers (e.g. contributors).
	Names []string

	// Language is the primary repository language for overview answers.
	Language string

	// Stars, Forks, Issues, PullRequests and Commits are the aggregate
	// figures for overview answers.
	Stars        int
	Forks        int
	Issues       int
	PullRequests int
	Commits      int

	// Related references the artifacts the answer was derived from
	// (the latest release, the matching bug reports, ...).
	Related []Artifact
}
