package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"restaurant-ops/internal/logger"
	"restaurant-ops/internal/models"
)

const (
	menuCacheKey   = "catalog:menu"
	tablesCacheKey = "catalog:tables"
)

// CachedStore is a cache-aside decorator over a Store. Redis failures fall
// back to the underlying store: the cache can only make reads cheaper,
// never break them.
type CachedStore struct {
	store  Store
	redis  *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewCachedStore wraps store with a Redis cache.
func NewCachedStore(store Store, rdb *redis.Client, ttl time.Duration, log *logger.Logger) *CachedStore {
	return &CachedStore{
		store:  store,
		redis:  rdb,
		ttl:    ttl,
		logger: log,
	}
}

func (c *CachedStore) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if c.fetch(ctx, menuCacheKey, &items) {
		return items, nil
	}

	items, err := c.store.ListMenuItems(ctx)
	if err != nil {
		return nil, err
	}

	c.put(ctx, menuCacheKey, items)
	return items, nil
}

func (c *CachedStore) ListTables(ctx context.Context) ([]models.Table, error) {
	var tables []models.Table
	if c.fetch(ctx, tablesCacheKey, &tables) {
		return tables, nil
	}

	tables, err := c.store.ListTables(ctx)
	if err != nil {
		return nil, err
	}

	c.put(ctx, tablesCacheKey, tables)
	return tables, nil
}

// fetch reports whether dst was populated from the cache.
func (c *CachedStore) fetch(ctx context.Context, key string, dst interface{}) bool {
	data, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if err := json.Unmarshal(data, dst); err != nil {
			c.logger.Error("cache_unmarshal_failed", "Discarding bad cache entry", "", err, map[string]interface{}{"key": key})
			return false
		}
		return true
	case err == redis.Nil:
		return false
	default:
		c.logger.Error("cache_read_failed", "Redis read failed, falling back to database", "", err, map[string]interface{}{"key": key})
		return false
	}
}

func (c *CachedStore) put(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		c.logger.Error("cache_marshal_failed", "Failed to marshal cache entry", "", err, map[string]interface{}{"key": key})
		return
	}
	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Error("cache_write_failed", "Redis write failed", "", err, map[string]interface{}{"key": key})
	}
}
