package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyQuery indicates an empty or whitespace-only search query.
	// Rejected before the pipeline runs.
	ErrEmptyQuery = errors.New("empty query")

	// ErrInvalidFilter indicates an unknown filter type or negative limit.
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrNotWorkspaceMember indicates the caller does not belong to the
	// workspace. Rejected before any provider is invoked.
	ErrNotWorkspaceMember = errors.New("not a workspace member")

	// Authentication Errors.

	// ErrAuthRequired indicates a provider requires authentication but none is configured.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthInvalid indicates the authentication credentials are invalid.
	ErrAuthInvalid = errors.New("authentication invalid")

	// Provider Errors.

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrProviderClosed indicates the provider has been closed.
	ErrProviderClosed = errors.New("provider closed")
)
