package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyData = "data:"

// DataCache caches per-user data blobs in Redis.
type DataCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewDataCache returns a new DataCache.
func NewDataCache(rdb *redis.Client, ttl time.Duration) *DataCache {
	return &DataCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached blob for the user, or nil on miss.
func (c *DataCache) Get(ctx context.Context, username string) (json.RawMessage, error) {
	b, err := c.rdb.Get(ctx, keyData+username).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Set stores the blob for the user.
func (c *DataCache) Set(ctx context.Context, username string, data json.RawMessage) error {
	return c.rdb.Set(ctx, keyData+username, []byte(data), c.ttl).Err()
}

// Invalidate removes the cached blob (cache invalidation on write).
func (c *DataCache) Invalidate(ctx context.Context, username string) error {
	return c.rdb.Del(ctx, keyData+username).Err()
}
