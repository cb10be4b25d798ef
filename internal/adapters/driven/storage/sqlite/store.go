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
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/vocalise-labs/vocalise-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/vocalise-labs/vocalise-cli/internal/core/domain"
	"github.com/vocalise-labs/vocalise-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.LexiconStore = (*Store)(nil)

// Store is a SQLite-backed lexicon store. Written forms are stored
// lowercase so lookups are case-insensitive.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.vocalise/data/lexicon.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".vocalise", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "lexicon.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
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

// Put creates or updates an entry keyed by its written form.
func (s *Store) Put(ctx context.Context, entry domain.LexiconEntry) error {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO lexicon_entries (written, spoken, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(written) DO UPDATE SET spoken = excluded.spoken
	`, strings.ToLower(entry.Written), entry.Spoken, createdAt)
	if err != nil {
		return fmt.Errorf("saving lexicon entry: %w", err)
	}
	return nil
}

// Get retrieves an entry by written form.
func (s *Store) Get(ctx context.Context, written string) (*domain.LexiconEntry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT written, spoken, created_at
		FROM lexicon_entries
		WHERE written = ?
	`, strings.ToLower(written))

	var entry domain.LexiconEntry
	if err := row.Scan(&entry.Written, &entry.Spoken, &entry.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("getting lexicon entry: %w", err)
	}
	return &entry, nil
}

// List returns all entries ordered by written form.
func (s *Store) List(ctx context.Context) ([]domain.LexiconEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT written, spoken, created_at
		FROM lexicon_entries
		ORDER BY written
	`)
	if err != nil {
		return nil, fmt.Errorf("listing lexicon entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.LexiconEntry
	for rows.Next() {
		var entry domain.LexiconEntry
		if err := rows.Scan(&entry.Written, &entry.Spoken, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning lexicon entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating lexicon entries: %w", err)
	}
	return entries, nil
}

// Delete removes an entry by written form.
func (s *Store) Delete(ctx context.Context, written string) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM lexicon_entries WHERE written = ?
	`, strings.ToLower(written))
	if err != nil {
		return fmt.Errorf("deleting lexicon entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_lexicon.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
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
