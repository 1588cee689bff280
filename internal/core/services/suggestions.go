package services

// suggestions is the curated list of example queries, in display order.
// Each one triggers at least one intent or exercises a boost rule.
var suggestions = []string{
	"How many open issues are there?",
	"Show me the latest release",
	"Who are the contributors?",
	"What language is this written in?",
	"Open pull requests",
	"Recent activity",
	"Bug reports",
	"Feature requests",
	"Repository overview",
	"Latest commit",
}

// Suggestions returns the curated example queries, in display order.
func (s *SearchService) Suggestions() []string {
	out := make([]string, len(suggestions))
	copy(out, suggestions)
	return out
}
