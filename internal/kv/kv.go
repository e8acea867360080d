// Package kv is the local key-value store used for the image locator cache
// and draw history. Values are JSON documents stored as strings.
//
// A Store is constructed once at startup (see Open) and passed by reference
// to the components that need it. Subscribers are notified after every
// successful Set on the same Store instance.
package kv

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrClosed is returned by operations on a closed store
var ErrClosed = errors.New("kv: store is closed")

// Store is a string-keyed persistent key-value store.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set overwrites the value for key and notifies subscribers.
	Set(ctx context.Context, key, value string) error
	// Subscribe registers fn for changes to key. The returned func removes it.
	Subscribe(key string, fn func(value string)) (unsubscribe func())
	Close() error
}

// Open selects a backend from dsn:
//
//	memory:              in-process map, nothing persisted
//	redis://host:6379/0  Redis
//	anything else        path to a SQLite database file (sqlite: prefix optional)
func Open(ctx context.Context, dsn string) (Store, error) {
	dsn = strings.TrimSpace(dsn)
	switch {
	case dsn == "" || dsn == "memory:":
		return NewMemory(), nil
	case strings.HasPrefix(dsn, "redis://"), strings.HasPrefix(dsn, "rediss://"):
		return OpenRedis(ctx, dsn)
	default:
		return OpenSQLite(ctx, strings.TrimPrefix(dsn, "sqlite:"))
	}
}

// hub fans out change notifications. Backends embed it.
type hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]func(string)
}

func (h *hub) Subscribe(key string, fn func(value string)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs == nil {
		h.subs = make(map[string]map[int]func(string))
	}
	if h.subs[key] == nil {
		h.subs[key] = make(map[int]func(string))
	}
	id := h.nextID
	h.nextID++
	h.subs[key][id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs[key], id)
		})
	}
}

func (h *hub) publish(key, value string) {
	h.mu.Lock()
	fns := make([]func(string), 0, len(h.subs[key]))
	for _, fn := range h.subs[key] {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(value)
	}
}

// Memory is an in-process Store. It is the default for tests.
type Memory struct {
	hub
	mu     sync.RWMutex
	data   map[string]string
	closed bool
}

// NewMemory returns an empty in-memory store
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return "", false, ErrClosed
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	m.data[key] = value
	m.mu.Unlock()

	m.publish(key, value)
	return nil
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func wrap(op, key string, err error) error {
	return fmt.Errorf("kv: %s %q: %w", op, key, err)
}
