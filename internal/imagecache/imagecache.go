// Package imagecache maps card identifiers to the final image URL that a
// redirector locator settles on, persisted in the local key-value store.
//
// A resolved entry is valid forever: it is never revalidated or deleted.
// Resolution failures are not cached, so the next access retries.
package imagecache

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/imdyangs/past-present-future/internal/kv"
)

// StorageKey is the key-value store key holding the cache document
const StorageKey = "tarot-img-url-cache-v1"

// Resolver follows a locator's redirects and reports the final URL without
// downloading the body.
type Resolver interface {
	ResolveFinal(ctx context.Context, rawURL string) (string, error)
}

// Cache resolves and remembers final image URLs
type Cache struct {
	store    kv.Store
	resolver Resolver
	logger   *zap.Logger

	// mu serialises the load-modify-save of the persisted document so
	// concurrent resolutions do not drop each other's entries.
	mu sync.Mutex
}

// New creates a Cache. A nil logger disables logging.
func New(store kv.Store, resolver Resolver, logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{store: store, resolver: resolver, logger: logger}
}

// Resolve returns the final URL for cardID. A persisted entry is returned
// without network access. Otherwise specialURL is probed; on any failure
// specialURL itself is returned and nothing is persisted.
func (c *Cache) Resolve(ctx context.Context, cardID, specialURL string) string {
	c.mu.Lock()
	entries := c.load(ctx)
	c.mu.Unlock()

	if cached, ok := entries[cardID]; ok && cached != "" {
		return cached
	}

	finalURL, err := c.resolver.ResolveFinal(ctx, specialURL)
	if err != nil || finalURL == "" {
		c.logger.Debug("image locator resolution failed",
			zap.String("card", cardID),
			zap.String("url", specialURL),
			zap.Error(err),
		)
		return specialURL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entries = c.load(ctx)
	entries[cardID] = finalURL
	if err := c.save(ctx, entries); err != nil {
		c.logger.Warn("image locator cache not saved", zap.String("card", cardID), zap.Error(err))
	}
	return finalURL
}

// Lookup returns the persisted final URL for cardID, if any
func (c *Cache) Lookup(ctx context.Context, cardID string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.load(ctx)[cardID]
	return v, ok && v != ""
}

// load reads the persisted document. Missing, unreadable or corrupt
// documents all read as an empty cache.
func (c *Cache) load(ctx context.Context) map[string]string {
	raw, ok, err := c.store.Get(ctx, StorageKey)
	if err != nil {
		c.logger.Warn("image locator cache unreadable", zap.Error(err))
		return map[string]string{}
	}
	if !ok || raw == "" {
		return map[string]string{}
	}

	entries := map[string]string{}
	if err := json.Unmarshal([]byte(raw), &entries); err != nil || entries == nil {
		c.logger.Warn("image locator cache corrupt, treating as empty", zap.Error(err))
		return map[string]string{}
	}
	return entries
}

func (c *Cache) save(ctx context.Context, entries map[string]string) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, StorageKey, string(data))
}
