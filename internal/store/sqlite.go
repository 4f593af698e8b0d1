package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/kedare/basket/internal/logger"

	_ "modernc.org/sqlite"
)

const (
	// DataDir is the directory under the user's home holding the database.
	DataDir = ".basket"
	// DBFileName is the name of the SQLite database file.
	DBFileName = "basket.db"
	// DBFilePermissions restricts the database to its owner.
	DBFilePermissions = 0o600
	// EnvDBPath overrides the database location.
	EnvDBPath = "BASKET_DB"
)

// SQLite is a KeyValue backed by the settings table of a SQLite database.
type SQLite struct {
	db   *sql.DB
	path string
	mu   sync.RWMutex
}

// DefaultPath returns $BASKET_DB, or ~/.basket/basket.db.
func DefaultPath() (string, error) {
	if env := strings.TrimSpace(os.Getenv(EnvDBPath)); env != "" {
		return env, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, DataDir, DBFileName), nil
}

// OpenSQLite opens, creating if needed, the database at path and brings its
// schema up to date.
func OpenSQLite(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	_, statErr := os.Stat(path)
	isNew := errors.Is(statErr, os.ErrNotExist)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps SQLite writes serialized.
	db.SetMaxOpenConns(1)

	if err := prepareSchema(db, path, isNew); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := os.Chmod(path, DBFilePermissions); err != nil {
		logger.Log.Debugf("Failed to restrict database permissions: %v", err)
	}

	logger.Log.Debugf("Opened preference database at %s", path)

	return &SQLite{db: db, path: path}, nil
}

// Path returns the database file location.
func (s *SQLite) Path() string {
	return s.path
}

// Get returns the stored value for key.
func (s *SQLite) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return "", false, ErrClosed
	}

	query := `SELECT value FROM settings WHERE key = ?`
	logSQL(query, key)

	var value string

	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}

	if err != nil {
		return "", false, fmt.Errorf("failed to read setting %s: %w", key, err)
	}

	return value, true, nil
}

// Set stores value under key.
func (s *SQLite) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return ErrClosed
	}

	query := `INSERT OR REPLACE INTO settings (key, value, updated_at) VALUES (?, ?, ?)`
	now := time.Now().Unix()
	logSQL(query, key, value, now)

	if _, err := s.db.ExecContext(ctx, query, key, value, now); err != nil {
		return fmt.Errorf("failed to write setting %s: %w", key, err)
	}

	logger.Log.Debugf("Set %s to %s", key, value)

	return nil
}

// UpdatedAt returns when key was last written.
func (s *SQLite) UpdatedAt(ctx context.Context, key string) (time.Time, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return time.Time{}, false, ErrClosed
	}

	query := `SELECT updated_at FROM settings WHERE key = ?`
	logSQL(query, key)

	var unix sql.NullInt64

	err := s.db.QueryRowContext(ctx, query, key).Scan(&unix)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !unix.Valid) {
		return time.Time{}, false, nil
	}

	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to read setting %s: %w", key, err)
	}

	return time.Unix(unix.Int64, 0), true, nil
}

// Close releases the database. Further calls return ErrClosed.
func (s *SQLite) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	err := s.db.Close()
	s.db = nil

	return err
}

// logSQL traces a statement and its arguments.
func logSQL(query string, args ...interface{}) {
	compact := strings.Join(strings.Fields(query), " ")
	if len(args) == 0 {
		logger.Log.Tracef("SQL: %s", compact)
		return
	}

	logger.Log.Tracef("SQL: %s %v", compact, args)
}
