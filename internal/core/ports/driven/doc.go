// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - WorkspaceStore: Workspace and membership persistence
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the search degrades to fewer sources:
//
//   - RepositoryProvider: Issues, pull requests, commits and releases
//     from the code-hosting service
//   - DocumentProvider: Documents from a documents service
//
// A provider failure at search time is absorbed as an empty result set
// for that source; it is never surfaced as a pipeline error.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
