// Package domain defines the core business entities for Worklens.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Artifact: A normalised searchable unit (issue, PR, commit, release,
//     document, member, or synthesised answer)
//   - Answer: The structured payload of an answer artifact
//   - Query: A validated search query with an optional filter
//   - Workspace, Member: Workspace state and membership records
//   - Raw records: Source records before normalisation
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
