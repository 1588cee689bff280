// Package services implements the driving port interfaces.
// Services contain the core business logic: the intent table, the
// relevance scorer, the context booster, the ranker, and the search
// orchestration that ties them to the driven ports (adapters).
//
// The scoring pipeline itself is pure and synchronous; only artifact
// collection performs I/O, and it runs before the pipeline starts.
package services
