package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/kedare/basket/internal/output"
	"github.com/kedare/basket/internal/store"
	"github.com/kedare/basket/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runRoot executes the root command with args against a database in a
// temporary directory and returns what it printed.
func runRoot(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append(args, "--db", db))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		dbPath = ""
	})

	err := rootCmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestThemeCommands(t *testing.T) {
	t.Setenv(theme.EnvColorScheme, "light")
	db := filepath.Join(t.TempDir(), "basket.db")

	out, err := runRoot(t, db, "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "Theme:  light")
	assert.Contains(t, out, "Source: system")
	assert.NotContains(t, out, "Saved:")

	_, err = runRoot(t, db, "theme", "set", "dark")
	require.NoError(t, err)

	out, err = runRoot(t, db, "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "Theme:  dark")
	assert.Contains(t, out, "Source: stored")
	assert.Contains(t, out, "Store:  "+db)
	assert.Contains(t, out, "Saved:")

	_, err = runRoot(t, db, "theme", "toggle")
	require.NoError(t, err)

	out, err = runRoot(t, db, "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "Theme:  light")
}

func TestThemeJSONOutput(t *testing.T) {
	db := filepath.Join(t.TempDir(), "basket.db")
	t.Cleanup(func() {
		themeOutputFormat = "text"
		output.SetFormat("text")
	})

	_, err := runRoot(t, db, "theme", "set", "dark")
	require.NoError(t, err)

	out, err := runRoot(t, db, "theme", "--output", "json")
	require.NoError(t, err)

	var report themeReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, theme.Dark, report.Theme)
	assert.Equal(t, theme.SourceStored, report.Source)
	assert.Equal(t, db, report.Store)
	assert.NotNil(t, report.SavedAt)
}

func TestThemeSetRejectsUnknownMode(t *testing.T) {
	db := filepath.Join(t.TempDir(), "basket.db")

	_, err := runRoot(t, db, "theme", "set", "sepia")
	assert.Error(t, err)
}

func TestToggleThemeReportsWriteFailure(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Set(context.Background(), theme.PreferenceKey, "dark"))
	kv.FailWrites(errors.New("read-only"))

	mode, err := toggleTheme(context.Background(), kv)

	assert.Error(t, err)
	assert.Equal(t, theme.Light, mode)
}

func TestShowThemeMemoryStore(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Set(context.Background(), theme.PreferenceKey, "dark"))

	var out bytes.Buffer
	require.NoError(t, showTheme(context.Background(), &out, kv))

	assert.Equal(t, "Theme:  dark\nSource: stored\n", out.String())
}

func TestInteractiveNeedsTerminal(t *testing.T) {
	orig := stdoutIsTerminal
	stdoutIsTerminal = func() bool { return false }
	defer func() { stdoutIsTerminal = orig }()

	err := runInteractive(interactiveCmd, nil)
	assert.ErrorIs(t, err, errNotTerminal)
}

func TestVersionCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "basket.db")

	out, err := runRoot(t, db, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version:")
	assert.Contains(t, out, "Go Version:")
}
