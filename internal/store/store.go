// Package store provides the key/value string store that holds user preferences.
package store

import (
	"context"
	"errors"
)

// ErrClosed is returned by operations on a store after Close.
var ErrClosed = errors.New("store is closed")

// KeyValue is a scoped string key/value store.
type KeyValue interface {
	// Get returns the value for key. found is false when the key has never been set.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	Close() error
}
