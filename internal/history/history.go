// Package history keeps the local log of past draws in the key-value store.
// The whole list is rewritten on every change, newest entry first.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/imdyangs/past-present-future/internal/card"
	"github.com/imdyangs/past-present-future/internal/kv"
)

// StorageKey is the key-value store key holding the history list
const StorageKey = "tarot-history"

// DefaultWindow is how many entries are shown
const DefaultWindow = 5

// Entry is one completed draw
type Entry struct {
	Timestamp time.Time   `json:"timestamp"`
	DeckID    string      `json:"deckId"`
	Cards     []card.Card `json:"cards"`
}

// Store reads and appends history entries
type Store struct {
	kv     kv.Store
	window int
	logger *zap.Logger
	mu     sync.Mutex
}

// New creates a Store. A window below one uses DefaultWindow.
func New(store kv.Store, window int, logger *zap.Logger) *Store {
	if window < 1 {
		window = DefaultWindow
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{kv: store, window: window, logger: logger}
}

// Window returns the number of visible entries
func (s *Store) Window() int {
	return s.window
}

// Append records a draw as the newest entry
func (s *Store) Append(ctx context.Context, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	e.Timestamp = e.Timestamp.UTC()

	entries := append([]Entry{e}, s.load(ctx)...)
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := s.kv.Set(ctx, StorageKey, string(data)); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

// All returns every persisted entry, newest first
func (s *Store) All(ctx context.Context) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Visible returns at most Window entries, newest first
func (s *Store) Visible(ctx context.Context) []Entry {
	return Clip(s.All(ctx), s.window)
}

// Subscribe calls fn with the visible entries after every change. fn runs
// while Append holds the store lock and must not call back into the Store.
func (s *Store) Subscribe(fn func([]Entry)) (unsubscribe func()) {
	return s.kv.Subscribe(StorageKey, func(value string) {
		fn(Clip(decode(value), s.window))
	})
}

// load reads the persisted list. Missing, unreadable or corrupt lists read
// as empty.
func (s *Store) load(ctx context.Context) []Entry {
	raw, ok, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		s.logger.Warn("history unreadable", zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}
	entries := decode(raw)
	if entries == nil && raw != "" && raw != "[]" && raw != "null" {
		s.logger.Warn("history corrupt, treating as empty")
	}
	return entries
}

func decode(raw string) []Entry {
	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil
	}
	return entries
}

// Clip returns the first n entries
func Clip(entries []Entry, n int) []Entry {
	if len(entries) > n {
		return entries[:n]
	}
	return entries
}
