package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "pokedex:response:"

// RedisCache shares cached responses between processes through Redis.
// Entries expire after TTL so upstream data corrections eventually land.
type RedisCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// RedisCacheConfig configures a RedisCache.
type RedisCacheConfig struct {
	Client redis.UniversalClient
	// TTL for cached entries. Defaults to 24 hours.
	TTL time.Duration
}

func (cfg *RedisCacheConfig) validate() error {
	if cfg == nil {
		return errors.New("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.New("client cannot be nil")
	}
	if cfg.TTL == 0 {
		cfg.TTL = 24 * time.Hour
	}
	return nil
}

func NewRedisCache(cfg *RedisCacheConfig) (*RedisCache, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid redis cache config: %w", err)
	}

	return &RedisCache{client: cfg.Client, ttl: cfg.TTL}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	body, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("error while reading cached response: %w", err)
	}

	return body, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, body []byte) error {
	err := c.client.Set(ctx, redisKeyPrefix+key, body, c.ttl).Err()
	if err != nil {
		return fmt.Errorf("error while caching response: %w", err)
	}

	return nil
}
