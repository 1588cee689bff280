package normalisers

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/worklens/internal/core/domain"
)

// Document normalises a document record from a documents provider.
func Document(rec domain.DocumentRecord) (domain.Artifact, bool) {
	if rec.Title == "" {
		return domain.Artifact{}, false
	}

	keywords := []string{"document", "doc"}
	if rec.Type != "" {
		keywords = append(keywords, strings.ToLower(rec.Type))
	}
	if rec.Status != "" {
		keywords = append(keywords, strings.ToLower(rec.Status))
	}

	return domain.Artifact{
		ID:    uuid.New().String(),
		Kind:  domain.KindDocument,
		Title: rec.Title,
		URL:   rec.URL,
		Score: priorDocument,
		Meta: domain.Metadata{
			Keywords:  keywords,
			DocType:   rec.Type,
			DocStatus: rec.Status,
			CreatedAt: timePtr(rec.CreatedAt),
			UpdatedAt: timePtr(rec.UpdatedAt),
		},
	}, true
}

// Member normalises a workspace membership record. Members carry no URL.
func Member(m domain.Member) (domain.Artifact, bool) {
	if m.Name == "" {
		return domain.Artifact{}, false
	}

	keywords := []string{"member", "person"}
	if m.Role != "" {
		keywords = append(keywords, strings.ToLower(m.Role))
	}

	description := m.Role
	if m.Email != "" {
		if description != "" {
			description += " - "
		}
		description += m.Email
	}

	return domain.Artifact{
		ID:          uuid.New().String(),
		Kind:        domain.KindMember,
		Title:       m.Name,
		Description: description,
		Score:       priorMember,
		Meta: domain.Metadata{
			Keywords:  keywords,
			Role:      m.Role,
			Email:     m.Email,
			CreatedAt: timePtr(m.JoinedAt),
		},
	}, true
}

// timePtr returns a pointer to t, or nil for the zero time so absent
// timestamps stay absent.
func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
