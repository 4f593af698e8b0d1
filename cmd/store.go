package cmd

import (
	"github.com/kedare/basket/internal/logger"
	"github.com/kedare/basket/internal/store"
)

// resolveDBPath returns the --db flag value or the default location.
func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}

	return store.DefaultPath()
}

// openStoreStrict opens the SQLite preference store and fails if it cannot.
func openStoreStrict() (*store.SQLite, error) {
	path, err := resolveDBPath()
	if err != nil {
		return nil, err
	}

	return store.OpenSQLite(path)
}

// openStore opens the SQLite preference store, falling back to memory so the
// interface still runs when the database is unavailable.
func openStore() store.KeyValue {
	s, err := openStoreStrict()
	if err != nil {
		logger.Log.Warnf("Theme changes will not be saved: %v", err)
		return store.NewMemory()
	}

	return s
}

func closeStore(kv store.KeyValue) {
	if err := kv.Close(); err != nil {
		logger.Log.Debugf("Failed to close preference store: %v", err)
	}
}
