package provider

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteCache_RoundTrip(t *testing.T) {
	ctx := context.Background()

	cache, err := NewSQLiteCache(ctx, ":memory:")
	require.NoError(t, err)
	defer cache.Close()

	_, ok, err := cache.Get(ctx, "https://example.test/pokemon/25")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "https://example.test/pokemon/25", []byte(`{"id":25}`)))

	body, ok, err := cache.Get(ctx, "https://example.test/pokemon/25")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"id":25}`), body)
}

func TestSQLiteCache_Overwrite(t *testing.T) {
	ctx := context.Background()

	cache, err := NewSQLiteCache(ctx, ":memory:")
	require.NoError(t, err)
	defer cache.Close()

	require.NoError(t, cache.Set(ctx, "key", []byte("old")))
	require.NoError(t, cache.Set(ctx, "key", []byte("new")))

	body, ok, err := cache.Get(ctx, "key")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("new"), body)
}

func TestRedisCache_RoundTrip(t *testing.T) {
	ctx := context.Background()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	cache, err := NewRedisCache(&RedisCacheConfig{Client: client})
	require.NoError(t, err)

	_, ok, err := cache.Get(ctx, "https://example.test/type")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "https://example.test/type", []byte(`{"results":[]}`)))

	body, ok, err := cache.Get(ctx, "https://example.test/type")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"results":[]}`), body)
}

func TestRedisCache_EntriesExpire(t *testing.T) {
	ctx := context.Background()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	cache, err := NewRedisCache(&RedisCacheConfig{Client: client})
	require.NoError(t, err)

	require.NoError(t, cache.Set(ctx, "key", []byte("body")))
	mr.FastForward(25 * time.Hour)

	_, ok, err := cache.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_RequiresClient(t *testing.T) {
	_, err := NewRedisCache(&RedisCacheConfig{})
	require.Error(t, err)
}
