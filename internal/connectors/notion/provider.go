package notion

import (
	"context"
	"fmt"
	"strings"

	"github.com/jomei/notionapi"

	"github.com/custodia-labs/worklens/internal/core/domain"
	"github.com/custodia-labs/worklens/internal/core/ports/driven"
)

// ProviderName identifies this provider in source counts.
const ProviderName = "notion"

// pageSize is the page size used for database queries.
const pageSize = 100

// databaseQuerier is the slice of the Notion client used here.
type databaseQuerier interface {
	Query(ctx context.Context, id notionapi.DatabaseID, req *notionapi.DatabaseQueryRequest) (*notionapi.DatabaseQueryResponse, error)
}

// Ensure Provider implements the interface.
var _ driven.DocumentProvider = (*Provider)(nil)

// Provider serves documents from a Notion database.
type Provider struct {
	db databaseQuerier
}

// NewProvider creates a documents provider using an integration token.
func NewProvider(token string) *Provider {
	client := notionapi.NewClient(notionapi.Token(token))
	return &Provider{db: client.Database}
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return ProviderName
}

// Documents fetches every page of the workspace database.
// A workspace without a configured database yields no documents.
func (p *Provider) Documents(ctx context.Context, ws domain.Workspace) ([]domain.DocumentRecord, error) {
	if ws.NotionDatabaseID == "" {
		return nil, nil
	}

	var records []domain.DocumentRecord

	req := &notionapi.DatabaseQueryRequest{PageSize: pageSize}
	for {
		resp, err := p.db.Query(ctx, notionapi.DatabaseID(ws.NotionDatabaseID), req)
		if err != nil {
			return nil, fmt.Errorf("query notion database %s: %w", ws.NotionDatabaseID, err)
		}

		for _, page := range resp.Results {
			records = append(records, pageToRecord(page))
		}

		if !resp.HasMore {
			break
		}
		req.StartCursor = notionapi.Cursor(resp.NextCursor)
	}

	return records, nil
}

// Close releases provider resources. The HTTP client needs no teardown.
func (p *Provider) Close() error {
	return nil
}

// pageToRecord maps a Notion page to a document record. The title comes
// from the page's title property; type and status come from the
// conventionally named select properties when present.
func pageToRecord(page notionapi.Page) domain.DocumentRecord {
	record := domain.DocumentRecord{
		ID:        page.ID.String(),
		Type:      "page",
		URL:       page.URL,
		CreatedAt: page.CreatedTime,
		UpdatedAt: page.LastEditedTime,
	}

	for name, prop := range page.Properties {
		switch v := prop.(type) {
		case *notionapi.TitleProperty:
			record.Title = richText(v.Title)
		case *notionapi.SelectProperty:
			if strings.EqualFold(name, "type") && v.Select.Name != "" {
				record.Type = v.Select.Name
			}
		case *notionapi.StatusProperty:
			record.Status = v.Status.Name
		}
	}

	return record
}

func richText(parts []notionapi.RichText) string {
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(part.PlainText)
	}
	return b.String()
}
