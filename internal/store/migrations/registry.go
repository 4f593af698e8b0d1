// Package migrations provides schema migrations for the preference database.
package migrations

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"
)

// Migration defines a database schema migration.
type Migration interface {
	// Version returns the target schema version after this migration is applied.
	Version() int

	// Description returns a human-readable description of what this migration does.
	Description() string

	// Up applies the migration. It must be safe to run more than once.
	Up(db *sql.DB) error
}

var registry []Migration

// Register adds a migration to the registry. Called from init functions.
func Register(m Migration) {
	registry = append(registry, m)
}

// All returns all registered migrations sorted by version.
func All() []Migration {
	sorted := make([]Migration, len(registry))
	copy(sorted, registry)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Version() < sorted[j].Version()
	})

	return sorted
}

// LatestVersion returns the highest migration version available.
func LatestVersion() int {
	maxVersion := 1 // base schema
	for _, m := range registry {
		if m.Version() > maxVersion {
			maxVersion = m.Version()
		}
	}

	return maxVersion
}

// GetPending returns migrations that need to be applied given the current version.
func GetPending(currentVersion int) []Migration {
	var pending []Migration

	for _, m := range All() {
		if m.Version() > currentVersion {
			pending = append(pending, m)
		}
	}

	return pending
}

// ExecStatements executes SQL statements, ignoring "already exists" errors.
func ExecStatements(db *sql.DB, statements []string) error {
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			if !isIgnorableError(err) {
				return fmt.Errorf("failed to execute statement: %w", err)
			}
		}
	}

	return nil
}

// isIgnorableError reports errors that mean the change is already in place.
func isIgnorableError(err error) bool {
	if err == nil {
		return true
	}

	msg := err.Error()

	return strings.Contains(msg, "duplicate column") ||
		strings.Contains(msg, "already exists")
}
