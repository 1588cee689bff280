package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/worklens/internal/core/domain"
	"github.com/custodia-labs/worklens/internal/core/ports/driven"
	"github.com/custodia-labs/worklens/internal/logger"
	"github.com/custodia-labs/worklens/internal/normalisers"
)

// membersSource is the sources-map key for the membership provider.
const membersSource = "members"

// collect fetches and normalises artifacts from every configured
// collaborator in parallel. A failing collaborator contributes zero
// artifacts and a Warn log; it never fails the search.
func (s *SearchService) collect(
	ctx context.Context, ws *domain.Workspace,
) ([]domain.Artifact, map[string]int) {
	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		artifacts []domain.Artifact
		sources   = make(map[string]int)
	)

	add := func(source string, batch []domain.Artifact) {
		mu.Lock()
		defer mu.Unlock()
		artifacts = append(artifacts, batch...)
		sources[source] = len(batch)
	}

	if s.repo != nil && ws.HasRepo() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			add(s.repo.Name(), s.collectRepository(ctx, ws))
		}()
	}

	for _, provider := range s.docs {
		if provider == nil {
			continue
		}
		wg.Add(1)
		go func(p driven.DocumentProvider) {
			defer wg.Done()
			add(p.Name(), s.collectDocuments(ctx, p, ws))
		}(provider)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		add(membersSource, s.collectMembers(ctx, ws))
	}()

	wg.Wait()
	return artifacts, sources
}

// collectRepository fetches the repository record and its issues, pull
// requests, commits and releases. Each fetch degrades independently.
func (s *SearchService) collectRepository(ctx context.Context, ws *domain.Workspace) []domain.Artifact {
	owner, name := ws.RepoOwner, ws.RepoName
	var batch []domain.Artifact

	if rec, err := s.repo.Repository(ctx, owner, name); err != nil {
		logger.Warn("Repository fetch failed for %s/%s: %v", owner, name, err)
	} else if rec != nil {
		if a, ok := normalisers.Repo(*rec); ok {
			batch = append(batch, a)
		}
	}

	if records, err := s.repo.Issues(ctx, owner, name); err != nil {
		logger.Warn("Issue fetch failed for %s/%s: %v", owner, name, err)
	} else {
		for _, rec := range records {
			if a, ok := normalisers.Issue(rec); ok {
				batch = append(batch, a)
			}
		}
	}

	if records, err := s.repo.PullRequests(ctx, owner, name); err != nil {
		logger.Warn("Pull request fetch failed for %s/%s: %v", owner, name, err)
	} else {
		for _, rec := range records {
			if a, ok := normalisers.PullRequest(rec); ok {
				batch = append(batch, a)
			}
		}
	}

	if records, err := s.repo.Commits(ctx, owner, name); err != nil {
		logger.Warn("Commit fetch failed for %s/%s: %v", owner, name, err)
	} else {
		for _, rec := range records {
			if a, ok := normalisers.Commit(rec); ok {
				batch = append(batch, a)
			}
		}
	}

	if records, err := s.repo.Releases(ctx, owner, name); err != nil {
		logger.Warn("Release fetch failed for %s/%s: %v", owner, name, err)
	} else {
		for _, rec := range records {
			if a, ok := normalisers.Release(rec); ok {
				batch = append(batch, a)
			}
		}
	}

	return batch
}

func (s *SearchService) collectDocuments(
	ctx context.Context, provider driven.DocumentProvider, ws *domain.Workspace,
) []domain.Artifact {
	records, err := provider.Documents(ctx, *ws)
	if err != nil {
		logger.Warn("Document fetch failed for provider %s: %v", provider.Name(), err)
		return nil
	}

	var batch []domain.Artifact
	for _, rec := range records {
		if a, ok := normalisers.Document(rec); ok {
			batch = append(batch, a)
		}
	}
	return batch
}

// collectMembers reads membership from already-loaded workspace state.
func (s *SearchService) collectMembers(ctx context.Context, ws *domain.Workspace) []domain.Artifact {
	members, err := s.store.ListMembers(ctx, ws.ID)
	if err != nil {
		logger.Warn("Member listing failed for workspace %s: %v", ws.ID, err)
		return nil
	}

	var batch []domain.Artifact
	for _, m := range members {
		if a, ok := normalisers.Member(m); ok {
			batch = append(batch, a)
		}
	}
	return batch
}
