// Package github implements the repository provider against the GitHub
// REST API using the go-github client. It handles authentication,
// pagination and rate limiting, and maps API responses to the raw
// records the normalisers consume.
package github
