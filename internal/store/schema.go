package store

import (
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/kedare/basket/internal/logger"
	"github.com/kedare/basket/internal/store/migrations"
)

// Base schema SQL statements (v1).
const (
	createMetadataTable = `
		CREATE TABLE IF NOT EXISTS metadata (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`

	createSettingsTable = `
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`
)

// prepareSchema creates the base tables and applies pending migrations.
func prepareSchema(db *sql.DB, dbPath string, isNew bool) error {
	if err := initSchema(db); err != nil {
		return err
	}

	if isNew {
		return initNewDatabase(db)
	}

	current, err := getSchemaVersion(db)
	if err != nil {
		return err
	}

	// An existing file without a version predates versioning.
	if current == 0 {
		current = 1
	}

	return migrateSchema(db, current, dbPath)
}

// initSchema creates the base database tables.
func initSchema(db *sql.DB) error {
	statements := []string{
		createMetadataTable,
		createSettingsTable,
	}

	for _, stmt := range statements {
		logSQL(stmt)

		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}

	logger.Log.Debug("Base database schema initialized")

	return nil
}

// getSchemaVersion returns the current schema version from the database.
// Returns 0 if no version is set.
func getSchemaVersion(db *sql.DB) (int, error) {
	var version int

	query := "SELECT value FROM metadata WHERE key = 'schema_version'"
	logSQL(query)

	err := db.QueryRow(query).Scan(&version)
	if err == sql.ErrNoRows {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}

	return version, nil
}

// setSchemaVersion updates the schema version in the database.
func setSchemaVersion(db *sql.DB, version int) error {
	query := "INSERT OR REPLACE INTO metadata (key, value) VALUES ('schema_version', ?)"
	logSQL(query, version)

	if _, err := db.Exec(query, version); err != nil {
		return fmt.Errorf("failed to set schema version: %w", err)
	}

	return nil
}

// backupDatabase copies the database file aside before a migration.
func backupDatabase(dbPath string) error {
	backupPath := dbPath + ".bak"

	src, err := os.Open(dbPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("failed to open database for backup: %w", err)
	}
	defer func() { _ = src.Close() }()

	dst, err := os.OpenFile(backupPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, DBFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to copy database to backup: %w", err)
	}

	logger.Log.Debugf("Created database backup at %s", backupPath)

	return nil
}

// removeBackup removes the backup file after a successful migration.
func removeBackup(dbPath string) {
	backupPath := dbPath + ".bak"
	if err := os.Remove(backupPath); err != nil && !os.IsNotExist(err) {
		logger.Log.Debugf("Failed to remove backup file: %v", err)
	}
}

// migrateSchema applies every registered migration newer than currentVersion.
func migrateSchema(db *sql.DB, currentVersion int, dbPath string) error {
	pending := migrations.GetPending(currentVersion)
	if len(pending) == 0 {
		return nil
	}

	targetVersion := migrations.LatestVersion()
	logger.Log.Debugf("Migrating database schema from version %d to %d", currentVersion, targetVersion)

	if err := backupDatabase(dbPath); err != nil {
		logger.Log.Warnf("Failed to create backup before migration: %v", err)
	}

	for _, m := range pending {
		logger.Log.Debugf("Applying migration v%d: %s", m.Version(), m.Description())

		if err := m.Up(db); err != nil {
			return fmt.Errorf("migration v%d failed: %w", m.Version(), err)
		}
	}

	if err := setSchemaVersion(db, targetVersion); err != nil {
		return err
	}

	removeBackup(dbPath)

	logger.Log.Debugf("Successfully migrated to schema version %d", targetVersion)

	return nil
}

// initNewDatabase applies all migrations to a fresh database.
func initNewDatabase(db *sql.DB) error {
	for _, m := range migrations.All() {
		if err := m.Up(db); err != nil {
			return fmt.Errorf("migration v%d failed: %w", m.Version(), err)
		}
	}

	return setSchemaVersion(db, migrations.LatestVersion())
}
