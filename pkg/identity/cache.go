package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheNamespace = "identity"

// RedisCache keeps resolved identities in redis.
type RedisCache struct {
	client redis.UniversalClient
}

// NewRedisCache creates a new RedisCache.
func NewRedisCache(client redis.UniversalClient) *RedisCache {
	return &RedisCache{client: client}
}

// Get returns the cached identity for key.
func (c *RedisCache) Get(ctx context.Context, key string) (*Identity, error) {
	raw, err := c.client.Get(ctx, cacheNamespace+":"+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read identity cache: %w", err)
	}

	var id Identity
	if err := json.Unmarshal(raw, &id); err != nil {
		return nil, fmt.Errorf("failed to decode cached identity: %w", err)
	}
	return &id, nil
}

// Set caches id under key for ttl.
func (c *RedisCache) Set(ctx context.Context, key string, id *Identity, ttl time.Duration) error {
	raw, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("failed to encode identity: %w", err)
	}
	return c.client.Set(ctx, cacheNamespace+":"+key, raw, ttl).Err()
}
