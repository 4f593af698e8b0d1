package theme

import (
	"context"
	"sync"

	"github.com/kedare/basket/internal/logger"
	"github.com/kedare/basket/internal/store"
)

// Source says where the current mode came from.
type Source string

const (
	// SourceDefault means nothing has been loaded yet.
	SourceDefault Source = "default"
	// SourceStored means the mode was read from the store.
	SourceStored Source = "stored"
	// SourceSystem means the store had no value and the host scheme was used.
	SourceSystem Source = "system"
	// SourceUser means the mode was changed during this session.
	SourceUser Source = "user"
)

// Preference is the in-memory theme state. It is the source of truth for
// the running session whether or not persistence succeeds.
type Preference struct {
	store  store.KeyValue
	system func() Mode

	mu     sync.RWMutex
	mode   Mode
	source Source

	writeMu sync.Mutex
	pending sync.WaitGroup
}

// Option configures a Preference.
type Option func(*Preference)

// WithSystemScheme replaces host color-scheme detection.
func WithSystemScheme(detect func() Mode) Option {
	return func(p *Preference) {
		p.system = detect
	}
}

// NewPreference returns a preference that starts in the host scheme until
// Load completes.
func NewPreference(kv store.KeyValue, opts ...Option) *Preference {
	p := &Preference{
		store:  kv,
		system: DetectSystem,
		source: SourceDefault,
	}

	for _, opt := range opts {
		opt(p)
	}

	p.mode = p.system()

	return p
}

// Mode returns the current mode.
func (p *Preference) Mode() Mode {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.mode
}

// Source returns where the current mode came from.
func (p *Preference) Source() Source {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.source
}

// Load reads the stored preference. A missing key falls back to the host
// scheme; a read failure is logged and also falls back. If the mode was
// changed in this session before Load finished, that choice wins.
func (p *Preference) Load(ctx context.Context) Mode {
	mode, source := p.system(), SourceSystem

	value, found, err := p.store.Get(ctx, PreferenceKey)
	switch {
	case err != nil:
		logger.Log.Errorf("Error loading theme preference: %v", err)
	case found:
		mode, source = fromStored(value), SourceStored
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.source == SourceUser {
		return p.mode
	}

	p.mode, p.source = mode, source

	return p.mode
}

// LoadAsync runs Load in the background and passes the result to apply.
func (p *Preference) LoadAsync(ctx context.Context, apply func(Mode)) {
	p.pending.Add(1)

	go func() {
		defer p.pending.Done()

		mode := p.Load(ctx)
		if apply != nil {
			apply(mode)
		}
	}()
}

// Toggle flips the mode and persists it before returning. A write failure
// is logged and returned; the flip stands either way.
func (p *Preference) Toggle(ctx context.Context) (Mode, error) {
	mode := p.flip()

	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	return mode, p.save(ctx, mode)
}

// ToggleAsync flips the mode immediately and persists it in the background.
// Writes are serialized and always store the latest mode, so rapid toggles
// cannot leave an older value on disk. The write outlives cancellation of
// ctx, so a toggle made just before shutdown is still saved.
func (p *Preference) ToggleAsync(ctx context.Context) Mode {
	mode := p.flip()
	ctx = context.WithoutCancel(ctx)

	p.pending.Add(1)

	go func() {
		defer p.pending.Done()

		p.writeMu.Lock()
		defer p.writeMu.Unlock()

		_ = p.save(ctx, p.Mode())
	}()

	return mode
}

// Set changes the mode to m and persists it.
func (p *Preference) Set(ctx context.Context, m Mode) error {
	p.mu.Lock()
	p.mode, p.source = m, SourceUser
	p.mu.Unlock()

	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	return p.save(ctx, m)
}

// Wait blocks until background loads and writes have finished.
func (p *Preference) Wait() {
	p.pending.Wait()
}

func (p *Preference) flip() Mode {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.mode, p.source = p.mode.Opposite(), SourceUser

	return p.mode
}

func (p *Preference) save(ctx context.Context, m Mode) error {
	if err := p.store.Set(ctx, PreferenceKey, m.String()); err != nil {
		logger.Log.Errorf("Error saving theme preference: %v", err)
		return err
	}

	logger.Log.Debugf("Saved theme preference: %s", m)

	return nil
}
