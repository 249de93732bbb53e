package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hmiq/internal/domain"
	"hmiq/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Index implements ports.CatalogIndex using SQLite
type Index struct {
	db     *sql.DB
	dbPath string
}

// Ensure Index implements CatalogIndex
var _ ports.CatalogIndex = (*Index)(nil)

// NewIndex creates a new SQLite index
func NewIndex() *Index {
	return &Index{}
}

// Open creates or opens the index database at path
func (idx *Index) Open(path string) error {
	// Expand ~ in path
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	idx.dbPath = path

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	idx.db = db

	// Pragmas + schema in single batch
	_, err = db.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS questionnaires (
			short TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			name_folded TEXT NOT NULL,
			position INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS scale_entries (
			short TEXT NOT NULL,
			language TEXT NOT NULL,
			scale TEXT NOT NULL,
			alpha REAL
		);
		CREATE TABLE IF NOT EXISTS languages (
			short TEXT NOT NULL,
			code TEXT NOT NULL,
			PRIMARY KEY (short, code)
		);
		CREATE TABLE IF NOT EXISTS times (
			short TEXT NOT NULL,
			time TEXT NOT NULL,
			PRIMARY KEY (short, time)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_scale_entries_scale ON scale_entries(scale);
		CREATE INDEX IF NOT EXISTS idx_languages_code ON languages(code);
		CREATE INDEX IF NOT EXISTS idx_times_time ON times(time);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// Path returns the database file location
func (idx *Index) Path() string {
	return idx.dbPath
}

// NeedsRebuild reports whether the index was built from a different catalog or schema
func (idx *Index) NeedsRebuild(ctx context.Context, catalog []domain.Questionnaire) (bool, error) {
	version, err := idx.meta(ctx, "schema_version")
	if err != nil {
		return false, err
	}
	fingerprint, err := idx.meta(ctx, "catalog_fingerprint")
	if err != nil {
		return false, err
	}
	current, err := domain.Fingerprint(catalog)
	if err != nil {
		return false, err
	}
	return version != schemaVersion || fingerprint != current, nil
}

func (idx *Index) meta(ctx context.Context, key string) (string, error) {
	var value string
	err := idx.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read meta %s: %w", key, err)
	}
	return value, nil
}
