package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/worklens/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/worklens/internal/core/domain"
	"github.com/custodia-labs/worklens/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.WorkspaceStore = (*Store)(nil)

// Store is a SQLite-backed workspace store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.worklens/data/worklens.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".worklens", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "worklens.db")

	// WAL mode for better concurrency.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// CreateWorkspace stores a new workspace.
func (s *Store) CreateWorkspace(ctx context.Context, ws *domain.Workspace) error {
	if ws.ID == "" || ws.Name == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO workspaces (id, name, repo_owner, repo_name, notion_database_id, drive_folder_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, ws.ID, ws.Name, ws.RepoOwner, ws.RepoName, ws.NotionDatabaseID, ws.DriveFolderID, ws.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("saving workspace: %w", err)
	}
	return nil
}

// GetWorkspace retrieves a workspace by ID.
func (s *Store) GetWorkspace(ctx context.Context, id string) (*domain.Workspace, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, repo_owner, repo_name, notion_database_id, drive_folder_id, created_at
		FROM workspaces WHERE id = ?
	`, id)

	var ws domain.Workspace
	if err := row.Scan(&ws.ID, &ws.Name, &ws.RepoOwner, &ws.RepoName,
		&ws.NotionDatabaseID, &ws.DriveFolderID, &ws.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning workspace: %w", err)
	}

	return &ws, nil
}

// ListWorkspaces returns all workspaces ordered by creation time.
func (s *Store) ListWorkspaces(ctx context.Context) ([]domain.Workspace, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, repo_owner, repo_name, notion_database_id, drive_folder_id, created_at
		FROM workspaces ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("querying workspaces: %w", err)
	}
	defer rows.Close()

	var workspaces []domain.Workspace //nolint:prealloc // size unknown from query
	for rows.Next() {
		var ws domain.Workspace
		if err := rows.Scan(&ws.ID, &ws.Name, &ws.RepoOwner, &ws.RepoName,
			&ws.NotionDatabaseID, &ws.DriveFolderID, &ws.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning workspace: %w", err)
		}
		workspaces = append(workspaces, ws)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workspaces: %w", err)
	}

	return workspaces, nil
}

// AddMember stores a new workspace member.
func (s *Store) AddMember(ctx context.Context, member *domain.Member) error {
	if member.ID == "" || member.WorkspaceID == "" || member.Name == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO members (id, workspace_id, name, email, role, joined_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, member.ID, member.WorkspaceID, member.Name, member.Email, member.Role, member.JoinedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("saving member: %w", err)
	}
	return nil
}

// ListMembers returns the members of a workspace ordered by join time.
func (s *Store) ListMembers(ctx context.Context, workspaceID string) ([]domain.Member, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, workspace_id, name, email, role, joined_at
		FROM members WHERE workspace_id = ? ORDER BY joined_at
	`, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("querying members: %w", err)
	}
	defer rows.Close()

	var members []domain.Member //nolint:prealloc // size unknown from query
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(&m.ID, &m.WorkspaceID, &m.Name, &m.Email, &m.Role, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("scanning member: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating members: %w", err)
	}

	return members, nil
}

// IsMember reports whether the member belongs to the workspace.
func (s *Store) IsMember(ctx context.Context, workspaceID, memberID string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM members WHERE workspace_id = ? AND id = ?
	`, workspaceID, memberID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking membership: %w", err)
	}
	return count > 0, nil
}

// isUniqueViolation reports whether the error is a primary key or
// unique constraint failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
