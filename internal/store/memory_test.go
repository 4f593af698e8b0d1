package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, found, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, m.Set(ctx, "k", "v"))
	value, found, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", value)
}

func TestMemoryFailures(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	boom := errors.New("disk full")

	m.FailWrites(boom)
	assert.ErrorIs(t, m.Set(ctx, "k", "v"), boom)

	m.FailWrites(nil)
	require.NoError(t, m.Set(ctx, "k", "v"))

	m.FailReads(boom)
	_, _, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, boom)
}

func TestMemoryContextAndClose(t *testing.T) {
	m := NewMemory()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.Set(ctx, "k", "v"), context.Canceled)

	require.NoError(t, m.Close())
	_, _, err := m.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrClosed)
}

var (
	_ KeyValue = (*Memory)(nil)
	_ KeyValue = (*SQLite)(nil)
)
