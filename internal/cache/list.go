// Copyright (c) 2026 Laith Alsalami <contact@laithalsalami.com>
// All rights reserved. See LICENSE for details.

// list.go provides a Valkey-backed cache for JSON-encoded resource lists.
// Public list endpoints serve the cached payload when present so repeated
// requests skip the DB query and re-encoding entirely. Admin mutations
// invalidate the affected list key.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// listKeyPrefix is the Valkey key prefix for cached lists.
	listKeyPrefix = "list:"

	// DefaultListTTL is how long a cached list stays fresh without invalidation.
	DefaultListTTL = 5 * time.Minute
)

// Well-known list cache keys, one per public collection endpoint.
const (
	KeyBlogs        = "blogs"
	KeyServices     = "services"
	KeyContentItems = "content-items"
)

// ListCache manages JSON list payload caching in Valkey. A nil ListCache
// is valid and disables caching, so handlers never need to branch.
type ListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListCache creates a list cache backed by the given Valkey client.
func NewListCache(client *redis.Client, ttl time.Duration) *ListCache {
	if ttl == 0 {
		ttl = DefaultListTTL
	}
	return &ListCache{client: client, ttl: ttl}
}

// Get retrieves a cached JSON payload for a list key. Returns false on miss.
func (lc *ListCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if lc == nil {
		return nil, false
	}
	val, err := lc.client.Get(ctx, listKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("list cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("list cache hit", "key", key)
	return val, true
}

// Set stores a JSON payload for a list key with the configured TTL.
func (lc *ListCache) Set(ctx context.Context, key string, payload []byte) {
	if lc == nil {
		return
	}
	if err := lc.client.Set(ctx, listKeyPrefix+key, payload, lc.ttl).Err(); err != nil {
		slog.Warn("list cache set error", "key", key, "error", err)
	}
}

// Invalidate removes a single cached list. Called after any mutation of
// the backing collection.
func (lc *ListCache) Invalidate(ctx context.Context, key string) {
	if lc == nil {
		return
	}
	if err := lc.client.Del(ctx, listKeyPrefix+key).Err(); err != nil {
		slog.Warn("list cache invalidate error", "key", key, "error", err)
	}
	slog.Debug("list cache invalidated", "key", key)
}
