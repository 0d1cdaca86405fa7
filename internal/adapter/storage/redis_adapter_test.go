package storage

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tomishop/internal/port"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func TestRedisAdapter_GetMissing(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client)

	client.Del(ctx, "test-tomishop-missing")

	_, err := adapter.Get(ctx, "test-tomishop-missing")
	require.ErrorIs(t, err, port.ErrKeyNotFound)
}

func TestRedisAdapter_RoundTrip(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client)

	client.Del(ctx, "test-tomishop-cart")

	require.NoError(t, adapter.Set(ctx, "test-tomishop-cart", []byte(`[{"id":1,"quantity":2}]`)))

	got, err := adapter.Get(ctx, "test-tomishop-cart")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":1,"quantity":2}]`), got)
}

func TestRedisAdapter_Overwrite(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client)

	client.Del(ctx, "test-tomishop-overwrite")

	require.NoError(t, adapter.Set(ctx, "test-tomishop-overwrite", []byte("[]")))
	require.NoError(t, adapter.Set(ctx, "test-tomishop-overwrite", []byte(`[{"id":3}]`)))

	got, err := adapter.Get(ctx, "test-tomishop-overwrite")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":3}]`), got)
}
