package repository

import (
	"context"
	"encoding/json"
	"time"

	"go-warehouse-api/internal/cache"

	"go.uber.org/zap"
)

// cacheTTL bounds how stale a cached read may be. Writes never invalidate;
// entries are disposable snapshots that age out on their own.
const cacheTTL = 60 * time.Second

// cacheGet returns the decoded entry for key, or false on a miss. A cache
// backend failure counts as a miss so the caller falls back to the store.
func cacheGet[T any](ctx context.Context, c cache.Client, log *zap.Logger, key string) (T, bool) {
	var v T
	raw, err := c.Get(ctx, key)
	if err != nil {
		if !cache.IsNotFound(err) {
			log.Warn("cache read failed, falling back to store", zap.String("key", key), zap.Error(err))
		}
		return v, false
	}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		log.Warn("cache entry undecodable, falling back to store", zap.String("key", key), zap.Error(err))
		return v, false
	}
	return v, true
}

// cachePut stores v under key, best-effort. Concurrent misses may both
// land here; last writer wins, which is fine for idempotent snapshots.
func cachePut[T any](ctx context.Context, c cache.Client, log *zap.Logger, key string, v T) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.Set(ctx, key, string(raw), cacheTTL); err != nil {
		log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}
