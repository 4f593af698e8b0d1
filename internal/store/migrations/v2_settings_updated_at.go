package migrations

import (
	"database/sql"
)

func init() {
	Register(&v2SettingsUpdatedAt{})
}

// v2SettingsUpdatedAt records when each setting was last written.
type v2SettingsUpdatedAt struct{}

func (m *v2SettingsUpdatedAt) Version() int {
	return 2
}

func (m *v2SettingsUpdatedAt) Description() string {
	return "Add updated_at to settings"
}

func (m *v2SettingsUpdatedAt) Up(db *sql.DB) error {
	statements := []string{
		`ALTER TABLE settings ADD COLUMN updated_at INTEGER`,
	}

	return ExecStatements(db, statements)
}
