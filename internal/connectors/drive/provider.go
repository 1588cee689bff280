package drive

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/custodia-labs/worklens/internal/core/domain"
	"github.com/custodia-labs/worklens/internal/core/ports/driven"
)

// ProviderName identifies this provider in source counts.
const ProviderName = "drive"

// Google Workspace MIME types.
const (
	MimeTypeGoogleDoc    = "application/vnd.google-apps.document"
	MimeTypeGoogleSheet  = "application/vnd.google-apps.spreadsheet"
	MimeTypeGoogleSlides = "application/vnd.google-apps.presentation"
	MimeTypeFolder       = "application/vnd.google-apps.folder"
)

// pageSize is the page size used for file listings.
const pageSize = 100

// listFields keeps the listing response small.
const listFields = "nextPageToken, files(id, name, mimeType, webViewLink, createdTime, modifiedTime, trashed)"

// fileLister is the slice of the Drive service used here.
type fileLister interface {
	List(ctx context.Context, query, pageToken string) (*drive.FileList, error)
}

// serviceLister adapts *drive.Service to fileLister.
type serviceLister struct {
	svc *drive.Service
}

func (l *serviceLister) List(ctx context.Context, query, pageToken string) (*drive.FileList, error) {
	call := l.svc.Files.List().
		Q(query).
		PageSize(pageSize).
		Fields(listFields).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}
	return call.Do()
}

// Ensure Provider implements the interface.
var _ driven.DocumentProvider = (*Provider)(nil)

// Provider serves documents from a Google Drive folder.
type Provider struct {
	files fileLister
}

// NewProvider creates a documents provider using the given token source.
func NewProvider(ctx context.Context, ts oauth2.TokenSource) (*Provider, error) {
	svc, err := drive.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}
	return &Provider{files: &serviceLister{svc: svc}}, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return ProviderName
}

// Documents fetches every file of the workspace folder. Folders and
// trashed files are skipped. A workspace without a configured folder
// yields no documents.
func (p *Provider) Documents(ctx context.Context, ws domain.Workspace) ([]domain.DocumentRecord, error) {
	if ws.DriveFolderID == "" {
		return nil, nil
	}

	query := fmt.Sprintf("'%s' in parents and trashed = false", ws.DriveFolderID)

	var records []domain.DocumentRecord
	pageToken := ""
	for {
		list, err := p.files.List(ctx, query, pageToken)
		if err != nil {
			return nil, fmt.Errorf("list drive folder %s: %w", ws.DriveFolderID, err)
		}

		for _, file := range list.Files {
			if file.MimeType == MimeTypeFolder || file.Trashed {
				continue
			}
			records = append(records, fileToRecord(file))
		}

		if list.NextPageToken == "" {
			break
		}
		pageToken = list.NextPageToken
	}

	return records, nil
}

// Close releases provider resources. The HTTP client needs no teardown.
func (p *Provider) Close() error {
	return nil
}

func fileToRecord(file *drive.File) domain.DocumentRecord {
	return domain.DocumentRecord{
		ID:        file.Id,
		Title:     file.Name,
		Type:      docType(file.MimeType),
		URL:       file.WebViewLink,
		CreatedAt: parseTime(file.CreatedTime),
		UpdatedAt: parseTime(file.ModifiedTime),
	}
}

func docType(mimeType string) string {
	switch mimeType {
	case MimeTypeGoogleDoc:
		return "doc"
	case MimeTypeGoogleSheet:
		return "sheet"
	case MimeTypeGoogleSlides:
		return "slides"
	default:
		return "file"
	}
}

// parseTime parses the RFC 3339 timestamps the Drive API returns.
// Malformed or absent values map to the zero time.
func parseTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
