package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/worklens/internal/core/domain"
	"github.com/custodia-labs/worklens/internal/core/ports/driven"
	"github.com/custodia-labs/worklens/internal/core/ports/driving"
	"github.com/custodia-labs/worklens/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService runs the workspace search pipeline: input validation,
// membership check, parallel artifact collection, intent analysis,
// scoring, boosting and ranking.
//
// The providers are optional (can be nil); a missing or failing provider
// contributes zero artifacts and the pipeline proceeds with the rest.
type SearchService struct {
	store driven.WorkspaceStore
	repo  driven.RepositoryProvider
	docs  []driven.DocumentProvider
	now   func() time.Time
}

// NewSearchService creates a new search service.
// The repo and docs providers are optional (can be nil).
func NewSearchService(
	store driven.WorkspaceStore,
	repo driven.RepositoryProvider,
	docs ...driven.DocumentProvider,
) *SearchService {
	return &SearchService{
		store: store,
		repo:  repo,
		docs:  docs,
		now:   time.Now,
	}
}

// SetClock overrides the wall clock used for recency rules.
// The pipeline is deterministic for a fixed clock. Useful for testing.
func (s *SearchService) SetClock(now func() time.Time) {
	s.now = now
}

// Search executes one search request end to end.
func (s *SearchService) Search(
	ctx context.Context, req domain.SearchRequest,
) (*domain.SearchResponse, error) {
	logger.Section("Search Execution")
	logger.Debug("Workspace: %s, Query: %q", req.WorkspaceID, req.Query)

	// Client input errors are rejected before any provider is invoked.
	query, err := domain.NewQuery(req.Query, req.Filter)
	if err != nil {
		return nil, err
	}

	ws, err := s.store.GetWorkspace(ctx, req.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("get workspace: %w", err)
	}

	// Authorization precedes collection. An empty MemberID is the
	// trusted local caller (single-user CLI).
	if req.MemberID != "" {
		member, err := s.store.IsMember(ctx, ws.ID, req.MemberID)
		if err != nil {
			return nil, fmt.Errorf("membership check: %w", err)
		}
		if !member {
			return nil, domain.ErrNotWorkspaceMember
		}
	}

	artifacts, sources := s.collect(ctx, ws)
	logger.Debug("Collected %d artifacts from %d sources", len(artifacts), len(sources))

	now := s.now()
	results := RunPipeline(query, artifacts, now)
	logger.Info("Final results: %d", len(results))

	return &domain.SearchResponse{
		Results: results,
		Total:   len(results),
		Query:   query.Text,
		Filter:  query.Filter,
		Sources: sources,
	}, nil
}

// RunPipeline executes the pure scoring pipeline on an already-collected
// artifact set: intent analysis, scoring, boosting and ranking. It has
// no I/O and never mutates its input; the injected now keeps recency
// rules deterministic.
func RunPipeline(query domain.Query, artifacts []domain.Artifact, now time.Time) []domain.Artifact {
	answers := AnalyzeIntents(query, artifacts)
	logger.Debug("Intent analysis produced %d answers", len(answers))

	scored := make([]domain.Artifact, len(artifacts))
	copy(scored, artifacts)
	for i := range scored {
		scored[i].Score = CombinedScore(&scored[i], query, now)
	}

	return Rank(answers, scored, query.Filter)
}
