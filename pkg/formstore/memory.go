package formstore

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrymomot/formlab/pkg/form"
)

type memoryEntry struct {
	state     form.State
	expiresAt time.Time
}

// MemoryStore keeps form states in process memory. A background loop
// drops expired entries every cleanup interval.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
	ticker  *time.Ticker
	done    chan struct{}
	once    sync.Once
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(m *MemoryStore) {
		if now != nil {
			m.now = now
		}
	}
}

// NewMemoryStore creates a store whose entries live for ttl after the last
// save. A zero cleanupInterval disables the background loop; expired
// entries are then only dropped when loaded.
func NewMemoryStore(ttl, cleanupInterval time.Duration, opts ...MemoryOption) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	m := &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}

	if cleanupInterval > 0 {
		m.ticker = time.NewTicker(cleanupInterval)
		go m.cleanupLoop()
	}
	return m
}

func (m *MemoryStore) Load(_ context.Context, id string) (form.State, error) {
	if id == "" {
		return form.State{}, ErrEmptyID
	}

	m.mu.RLock()
	e, ok := m.entries[id]
	m.mu.RUnlock()

	if !ok {
		return form.State{}, nil
	}
	if m.expired(e) {
		m.mu.Lock()
		// a Save may have renewed the entry since the read lock was released
		if e, ok := m.entries[id]; ok && m.expired(e) {
			delete(m.entries, id)
		}
		m.mu.Unlock()
		return form.State{}, nil
	}
	return e.state.Clone(), nil
}

func (m *MemoryStore) expired(e memoryEntry) bool {
	return !m.now().Before(e.expiresAt)
}

func (m *MemoryStore) Save(_ context.Context, id string, state form.State) error {
	if id == "" {
		return ErrEmptyID
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[id] = memoryEntry{state: state.Clone(), expiresAt: m.now().Add(m.ttl)}
	return nil
}

// Update holds the write lock while fn runs, so fn must not call back into
// the store.
func (m *MemoryStore) Update(_ context.Context, id string, fn UpdateFunc) (form.State, error) {
	if id == "" {
		return form.State{}, ErrEmptyID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var current form.State
	if e, ok := m.entries[id]; ok && !m.expired(e) {
		current = e.state.Clone()
	}
	next, err := fn(current)
	if err != nil {
		return next, err
	}
	m.entries[id] = memoryEntry{state: next.Clone(), expiresAt: m.now().Add(m.ttl)}
	return next, nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
	return nil
}

// DeleteExpired drops every expired entry and returns how many were removed.
func (m *MemoryStore) DeleteExpired() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for id, e := range m.entries {
		if m.expired(e) {
			delete(m.entries, id)
			n++
		}
	}
	return n
}

// Len returns the number of stored entries, expired ones included.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Close stops the cleanup loop. It is safe to call more than once.
func (m *MemoryStore) Close() error {
	m.once.Do(func() {
		if m.ticker != nil {
			m.ticker.Stop()
			close(m.done)
		}
	})
	return nil
}

func (m *MemoryStore) cleanupLoop() {
	for {
		select {
		case <-m.ticker.C:
			m.DeleteExpired()
		case <-m.done:
			return
		}
	}
}
