package store

import (
	"context"
	"sync"
)

// Memory is an in-process KeyValue. It serves as the fallback when the
// database cannot be opened, and as a test double.
type Memory struct {
	mu      sync.RWMutex
	values  map[string]string
	closed  bool
	readErr error
	setErr  error
}

// NewMemory returns an empty memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// FailReads makes every subsequent Get return err. Nil clears it.
func (m *Memory) FailReads(err error) {
	m.mu.Lock()
	m.readErr = err
	m.mu.Unlock()
}

// FailWrites makes every subsequent Set return err. Nil clears it.
func (m *Memory) FailWrites(err error) {
	m.mu.Lock()
	m.setErr = err
	m.mu.Unlock()
}

func (m *Memory) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return "", false, ErrClosed
	}

	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	if m.readErr != nil {
		return "", false, m.readErr
	}

	value, ok := m.values[key]

	return value, ok, nil
}

func (m *Memory) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if m.setErr != nil {
		return m.setErr
	}

	m.values[key] = value

	return nil
}

func (m *Memory) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()

	return nil
}
