package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/itsklemy/cercle-backend/services/catalog/domain/rollup"
)

const catalogCacheKeyPrefix = "catalog"

// CatalogCache stores the per-circle aggregated catalog as a JSON blob.
// Keys are scoped by circleID to prevent cross-circle data leakage.
// Key format: "catalog:{circleID}"
type CatalogCache struct {
	client *RedisClient
	ttl    time.Duration
}

// NewCatalogCache creates a CatalogCache backed by the given RedisClient.
// Entries expire after ttl so a stale rollup can never outlive a missed
// invalidation for long.
func NewCatalogCache(r *RedisClient, ttl time.Duration) *CatalogCache {
	return &CatalogCache{client: r, ttl: ttl}
}

// Get retrieves the cached catalog for a circle.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *CatalogCache) Get(ctx context.Context, circleID uuid.UUID) ([]rollup.Group, error) {
	raw, err := c.client.Client().Get(ctx, c.key(circleID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("catalog cache get: %w", err)
	}

	var groups []rollup.Group
	if err := json.Unmarshal(raw, &groups); err != nil {
		return nil, fmt.Errorf("catalog cache decode: %w", err)
	}
	return groups, nil
}

// Set writes the aggregated catalog for a circle with the configured TTL.
func (c *CatalogCache) Set(ctx context.Context, circleID uuid.UUID, groups []rollup.Group) error {
	raw, err := json.Marshal(groups)
	if err != nil {
		return fmt.Errorf("catalog cache encode: %w", err)
	}
	if err := c.client.Client().Set(ctx, c.key(circleID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("catalog cache set: %w", err)
	}
	return nil
}

// Delete drops the cached catalog for a circle. The next read repopulates it
// from the database.
func (c *CatalogCache) Delete(ctx context.Context, circleID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(circleID)).Err(); err != nil {
		return fmt.Errorf("catalog cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "catalog:{circleID}"
func (c *CatalogCache) key(circleID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", catalogCacheKeyPrefix, circleID)
}
