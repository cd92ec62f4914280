// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // CGO SQLite driver, registered as "sqlite3"
	_ "modernc.org/sqlite"          // Pure Go SQLite driver (no CGO), registered as "sqlite"

	"github.com/mmynk/hoard/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

const (
	// DriverModernc is the pure Go driver and the default.
	DriverModernc = "sqlite"
	// DriverMattn is the CGO driver; it needs a binary built with CGO_ENABLED=1.
	DriverMattn = "sqlite3"

	busyTimeoutMillis = 5000
)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore at dbPath using the pure Go driver.
func New(dbPath string) (*SQLiteStore, error) {
	return NewWithDriver(DriverModernc, dbPath)
}

// NewWithDriver creates a new SQLiteStore using the named driver.
// It creates the parent directories and runs migrations automatically.
func NewWithDriver(driver, dbPath string) (*SQLiteStore, error) {
	dsn, err := buildDSN(driver, dbPath)
	if err != nil {
		return nil, err
	}

	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// buildDSN adds the per-connection pragmas. They go into the DSN rather than
// a one-off Exec so that every pooled connection gets them.
func buildDSN(driver, dbPath string) (string, error) {
	switch driver {
	case DriverModernc:
		return fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)",
			dbPath, busyTimeoutMillis), nil
	case DriverMattn:
		return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=%d&_journal_mode=WAL",
			dbPath, busyTimeoutMillis), nil
	default:
		return "", fmt.Errorf("unknown sqlite driver: %q (supported: %s, %s)", driver, DriverModernc, DriverMattn)
	}
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Ping checks that the database is reachable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// exists runs a SELECT EXISTS query for the given table and id.
// table is always a constant from this package.
func (s *SQLiteStore) exists(ctx context.Context, table string, id int64) (bool, error) {
	var found bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM "+table+" WHERE id = ?)",
		id,
	).Scan(&found)
	if err != nil {
		return false, fmt.Errorf("failed to check %s existence: %w", table, err)
	}
	return found, nil
}

// deleteByID removes the row with the given id from table.
func (s *SQLiteStore) deleteByID(ctx context.Context, table string, id int64) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	return nil
}
