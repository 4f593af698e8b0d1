package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kedare/basket/internal/store/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) (*SQLite, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "nested", DBFileName)
	s, err := OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s, path
}

func TestOpenSQLiteCreatesSchema(t *testing.T) {
	s, path := openTestStore(t)
	assert.Equal(t, path, s.Path())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(DBFilePermissions), info.Mode().Perm())

	version, err := getSchemaVersion(s.db)
	require.NoError(t, err)
	assert.Equal(t, migrations.LatestVersion(), version)
}

func TestSQLiteGetSet(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	_, found, err := s.Get(ctx, "themePreference")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "themePreference", "dark"))
	value, found, err := s.Get(ctx, "themePreference")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "dark", value)

	require.NoError(t, s.Set(ctx, "themePreference", "light"))
	value, _, err = s.Get(ctx, "themePreference")
	require.NoError(t, err)
	assert.Equal(t, "light", value)

	updated, found, err := s.UpdatedAt(ctx, "themePreference")
	require.NoError(t, err)
	assert.True(t, found)
	assert.WithinDuration(t, time.Now(), updated, time.Minute)
}

func TestSQLitePersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), DBFileName)
	ctx := context.Background()

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "themePreference", "dark"))
	require.NoError(t, s.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	value, found, err := reopened.Get(ctx, "themePreference")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "dark", value)
}

func TestSQLiteClosed(t *testing.T) {
	s, _ := openTestStore(t)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "second close is a no-op")

	_, _, err := s.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, s.Set(context.Background(), "k", "v"), ErrClosed)
	_, _, err = s.UpdatedAt(context.Background(), "k")
	assert.ErrorIs(t, err, ErrClosed)
}

func TestMigrateLegacyDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), DBFileName)

	// A v1 database: base tables, no updated_at column, no version row.
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	require.NoError(t, initSchema(db))
	_, err = db.Exec(`INSERT INTO settings (key, value) VALUES ('themePreference', 'dark')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	version, err := getSchemaVersion(s.db)
	require.NoError(t, err)
	assert.Equal(t, migrations.LatestVersion(), version)

	value, found, err := s.Get(context.Background(), "themePreference")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "dark", value)

	_, found, err = s.UpdatedAt(context.Background(), "themePreference")
	require.NoError(t, err)
	assert.False(t, found, "rows written before v2 have no timestamp")

	_, err = os.Stat(path + ".bak")
	assert.True(t, os.IsNotExist(err), "backup is removed after a successful migration")
}

func TestMigrationsAreIdempotent(t *testing.T) {
	s, _ := openTestStore(t)

	for _, m := range migrations.All() {
		require.NoError(t, m.Up(s.db), "migration v%d", m.Version())
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv(EnvDBPath, "/tmp/custom.db")
	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", path)

	t.Setenv(EnvDBPath, "")
	t.Setenv("HOME", "/home/tester")
	path, err = DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", DataDir, DBFileName), path)
}
