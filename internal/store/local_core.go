// Package store persists parsed listings to SQLite (SPEC_FULL.md §4.16). It
// never interprets field semantics: it serializes a record.ListingRecord's
// full field map as JSON and promotes a handful of columns so common
// queries (by brand, by device type) don't require a JSON scan.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/theatomus/listingscanner/internal/logging"
	"github.com/theatomus/listingscanner/internal/record"

	_ "modernc.org/sqlite"
)

// Writer is the narrow persistence interface the CLI's worker pool writes
// through. A single shared Writer serializes all writes internally, since
// SQLite tolerates only one writer at a time (SPEC_FULL.md §5).
type Writer interface {
	WriteListing(ctx context.Context, sourcePath string, rec *record.ListingRecord) error
	WriteError(ctx context.Context, sourcePath string, parseErr error) error
	Close() error
}

// SQLiteStore implements Writer over a modernc.org/sqlite database.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (creating if necessary) the database at dsn and
// ensures its schema is current.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	timer := logging.StartTimer(logging.CategoryStore, "NewSQLiteStore")
	defer timer.Stop()

	if path := filePathFromDSN(dsn); path != "" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create store directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		logging.Get(logging.CategoryStore).Error("failed to open store at %s: %v", dsn, err)
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		logging.Get(logging.CategoryStore).Warn("failed to set journal_mode=WAL: %v", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		logging.Get(logging.CategoryStore).Warn("failed to set busy_timeout: %v", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	logging.Store("store ready at %s", dsn)
	return s, nil
}

// filePathFromDSN strips a "file:" prefix and any trailing query params so
// the parent directory of a file-backed DSN can be created up front.
func filePathFromDSN(dsn string) string {
	path := dsn
	if len(path) > 5 && path[:5] == "file:" {
		path = path[5:]
	}
	if path == ":memory:" || path == "" {
		return ""
	}
	for i := 0; i < len(path); i++ {
		if path[i] == '?' {
			return path[:i]
		}
	}
	return path
}

func (s *SQLiteStore) initialize() error {
	listingsTable := `
	CREATE TABLE IF NOT EXISTS listings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		source_path TEXT NOT NULL,
		full_title TEXT,
		device_type TEXT,
		brand TEXT,
		model TEXT,
		cpu_model TEXT,
		storage_capacity TEXT,
		ram_size TEXT,
		fields_json TEXT NOT NULL,
		parsed_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(source_path)
	);
	CREATE INDEX IF NOT EXISTS idx_listings_brand ON listings(brand);
	CREATE INDEX IF NOT EXISTS idx_listings_device_type ON listings(device_type);
	`

	errorsTable := `
	CREATE TABLE IF NOT EXISTS listing_errors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		source_path TEXT NOT NULL,
		message TEXT NOT NULL,
		occurred_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_listing_errors_path ON listing_errors(source_path);
	`

	for _, stmt := range []string{listingsTable, errorsTable} {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// WriteListing upserts one parsed listing, keyed by source path (re-scanning
// a file replaces its previous row rather than duplicating it).
func (s *SQLiteStore) WriteListing(ctx context.Context, sourcePath string, rec *record.ListingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := rec.StructuredView()
	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("failed to marshal listing fields: %w", err)
	}

	deviceType := firstNonEmpty(view["title_device_type"], view["specs_device_type"])
	brand := firstNonEmpty(view["title_brand"], view["specs_brand"])
	model := firstNonEmpty(view["title_model"], view["specs_model"])
	cpuModel := view["title_cpu_model"]
	storageCapacity := firstNonEmpty(view["title_storage_capacity"], view["specs_storage_capacity"])
	ramSize := firstNonEmpty(view["title_ram_size"], view["specs_ram_size"])

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO listings (source_path, full_title, device_type, brand, model, cpu_model, storage_capacity, ram_size, leaf_category, fields_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(source_path) DO UPDATE SET
			full_title=excluded.full_title, device_type=excluded.device_type, brand=excluded.brand,
			model=excluded.model, cpu_model=excluded.cpu_model, storage_capacity=excluded.storage_capacity,
			ram_size=excluded.ram_size, leaf_category=excluded.leaf_category, fields_json=excluded.fields_json, parsed_at=CURRENT_TIMESTAMP
	`, sourcePath, rec.FullTitle, deviceType, brand, model, cpuModel, storageCapacity, ramSize, rec.LeafCategory, string(data))
	if err != nil {
		logging.Get(logging.CategoryStore).Error("failed to write listing %s: %v", sourcePath, err)
		return fmt.Errorf("failed to write listing: %w", err)
	}

	logging.LogListingParsed(sourcePath, deviceType, brand, model, len(view), 0)
	return nil
}

// WriteError records a gross I/O failure for one file (SPEC_FULL.md §7).
func (s *SQLiteStore) WriteError(ctx context.Context, sourcePath string, parseErr error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `INSERT INTO listing_errors (source_path, message) VALUES (?, ?)`, sourcePath, parseErr.Error())
	if err != nil {
		return fmt.Errorf("failed to record listing error: %w", err)
	}
	logging.LogListingError(sourcePath, parseErr, 0)
	return nil
}

// Close closes the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// DB exposes the underlying connection for the rules-viewer UI and tests.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// LoadMostRecent returns the source path, flattened field map, and any
// recorded diagnostics for the most recently written listing. Used by the
// `rules` TUI when no explicit file argument is given (SPEC_FULL.md §4.20).
func LoadMostRecent(s *SQLiteStore) (string, map[string]string, []string, error) {
	var path, fieldsJSON string
	err := s.db.QueryRow(`SELECT source_path, fields_json FROM listings ORDER BY parsed_at DESC LIMIT 1`).Scan(&path, &fieldsJSON)
	if err != nil {
		return "", nil, nil, fmt.Errorf("no listings recorded yet: %w", err)
	}

	var fields map[string]string
	if err := json.Unmarshal([]byte(fieldsJSON), &fields); err != nil {
		return "", nil, nil, fmt.Errorf("failed to decode stored fields: %w", err)
	}

	diagnostics, err := loadDiagnostics(s.db, path)
	if err != nil {
		return "", nil, nil, err
	}
	return path, fields, diagnostics, nil
}

func loadDiagnostics(db *sql.DB, path string) ([]string, error) {
	rows, err := db.Query(`SELECT message FROM listing_errors WHERE source_path = ? ORDER BY occurred_at DESC LIMIT 20`, path)
	if err != nil {
		return nil, fmt.Errorf("failed to query diagnostics: %w", err)
	}
	defer rows.Close()

	var messages []string
	for rows.Next() {
		var msg string
		if err := rows.Scan(&msg); err != nil {
			continue
		}
		messages = append(messages, msg)
	}
	return messages, nil
}
