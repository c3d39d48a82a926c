// Package cache implements the listing service's caching core: the
// cache-aside property queryset cache, the write-triggered invalidator, and
// the cache-effectiveness analyzer.
package cache

import (
	"context"
	"time"

	"property-listings/internal/common/logging"
	"property-listings/internal/redis"
	"property-listings/internal/storage"
)

// AllPropertiesKey is the single well-known queryset cache key. The only
// supported read is "all listings", so one key keeps invalidation O(1) and
// unambiguous: any write invalidates the one and only aggregate. The key name
// is a stable external contract.
const AllPropertiesKey = "all_properties"

// Store is the key-value capability the cache consumes. A cache miss is
// signalled by an error matching redis.IsNil.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	GetJSON(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) (bool, error)
	Exists(ctx context.Context, key string) (bool, error)
	TTL(ctx context.Context, key string) (time.Duration, error)
}

// Lister is the slice of the persistent store the cache reads through to
type Lister interface {
	ListProperties() ([]storage.Property, error)
}

// PropertyCache serves the full property listing cache-aside: reads check the
// cache store first and fall back to the persistent store, populating the
// cache on the way out. A nil Store disables caching and every read goes
// straight to the persistent store.
type PropertyCache struct {
	store  Store
	db     Lister
	ttl    time.Duration
	logger logging.Logger
}

// Diagnostics reports the current cache entry state without mutating it
type Diagnostics struct {
	CacheKey   string  `json:"cache_key"`
	Exists     bool    `json:"exists"`
	Count      int     `json:"count"`
	DataType   string  `json:"data_type,omitempty"`
	TTLSeconds float64 `json:"ttl_seconds"`
}

func NewPropertyCache(store Store, db Lister, ttl time.Duration) *PropertyCache {
	return &PropertyCache{
		store:  store,
		db:     db,
		ttl:    ttl,
		logger: logging.GetGlobalLogger().WithFields(logging.Field{Key: "component", Value: "property_cache"}),
	}
}

// GetAll returns every property, newest first. On a cache hit the cached
// snapshot is returned unchanged, without re-validation against the store.
// On a miss the persistent store is read and the result cached under
// AllPropertiesKey with the configured TTL (one cache write per miss).
//
// Cache-store failures degrade to a direct store read; persistent-store
// failures propagate to the caller unmodified.
func (c *PropertyCache) GetAll(ctx context.Context) ([]storage.Property, error) {
	if c.store != nil {
		var cached []storage.Property
		err := c.store.GetJSON(ctx, AllPropertiesKey, &cached)
		if err == nil {
			c.logger.Debug("Cache hit", logging.String("key", AllPropertiesKey), logging.Int("count", len(cached)))
			return cached, nil
		}
		if redis.IsNil(err) {
			c.logger.Debug("Cache miss", logging.String("key", AllPropertiesKey))
		} else {
			c.logger.Warn("Cache store unavailable, reading from database",
				logging.String("key", AllPropertiesKey), logging.Err(err))
		}
	}

	properties, err := c.db.ListProperties()
	if err != nil {
		return nil, err
	}

	if c.store != nil {
		if err := c.store.Set(ctx, AllPropertiesKey, properties, c.ttl); err != nil {
			c.logger.Warn("Failed to populate cache",
				logging.String("key", AllPropertiesKey), logging.Err(err))
		} else {
			c.logger.Info("Cache populated",
				logging.String("key", AllPropertiesKey),
				logging.Int("count", len(properties)),
				logging.Duration("ttl", c.ttl))
		}
	}

	return properties, nil
}

// Invalidate removes the queryset entry unconditionally and reports whether a
// key was actually present. It never fails the caller: a cache store that is
// down or unreachable is logged and reported as nothing removed, because a
// write to the primary entity must not fail on cache cleanup.
func (c *PropertyCache) Invalidate(ctx context.Context) bool {
	if c.store == nil {
		return false
	}

	removed, err := c.store.Delete(ctx, AllPropertiesKey)
	if err != nil {
		c.logger.Warn("Cache invalidation failed",
			logging.String("key", AllPropertiesKey), logging.Err(err))
		return false
	}

	if removed {
		c.logger.Info("Cache invalidated", logging.String("key", AllPropertiesKey))
	} else {
		c.logger.Debug("Cache invalidation was a no-op, key absent",
			logging.String("key", AllPropertiesKey))
	}
	return removed
}

// Diagnostics reports whether the queryset entry exists, its size and shape,
// and its remaining TTL. It is read-only: neither cache state nor the TTL is
// touched.
func (c *PropertyCache) Diagnostics(ctx context.Context) *Diagnostics {
	info := &Diagnostics{CacheKey: AllPropertiesKey}
	if c.store == nil {
		return info
	}

	var cached []storage.Property
	if err := c.store.GetJSON(ctx, AllPropertiesKey, &cached); err != nil {
		if !redis.IsNil(err) {
			c.logger.Warn("Cache diagnostics read failed", logging.Err(err))
		}
		return info
	}

	info.Exists = true
	info.Count = len(cached)
	info.DataType = "[]storage.Property"

	if ttl, err := c.store.TTL(ctx, AllPropertiesKey); err == nil && ttl > 0 {
		info.TTLSeconds = ttl.Seconds()
	}

	return info
}
