package data

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSettingsCache implements the core.SettingsCache interface using Redis.
// Machine-settings lookups are read on every analytics request, so they are
// cached with a short TTL to keep load off the settings table.
type RedisSettingsCache struct {
	client redis.UniversalClient
}

// NewRedisSettingsCache creates a new RedisSettingsCache with the given Redis client.
func NewRedisSettingsCache(client redis.UniversalClient) *RedisSettingsCache {
	return &RedisSettingsCache{client: client}
}

// Get retrieves a value from Redis by key. A missing key returns (nil, nil).
func (r *RedisSettingsCache) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}

	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return []byte(result), nil
}

// Set stores a value in Redis with the given key and TTL.
func (r *RedisSettingsCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	return r.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key from Redis.
func (r *RedisSettingsCache) Delete(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.New("key cannot be empty")
	}

	result, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis del: %w", err)
	}
	return result > 0, nil
}
