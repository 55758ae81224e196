package utils

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestCacheRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	// Miss before set
	var out payload
	found, err := GetCache(ctx, rdb, "k", &out)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, SetCache(ctx, rdb, "k", payload{Name: "x", Count: 2}, time.Minute))

	found, err = GetCache(ctx, rdb, "k", &out)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, payload{Name: "x", Count: 2}, out)

	// Delete makes it a miss again
	require.NoError(t, DeleteCache(ctx, rdb, "k"))
	found, err = GetCache(ctx, rdb, "k", &out)
	require.NoError(t, err)
	require.False(t, found)
}

func TestCacheExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	ctx := context.Background()

	require.NoError(t, SetCache(ctx, rdb, "k", "v", time.Second))
	mr.FastForward(2 * time.Second) // Simulate TTL expiry

	var out string
	found, err := GetCache(ctx, rdb, "k", &out)
	require.NoError(t, err)
	require.False(t, found)
}

func TestCacheNilClientIsNoop(t *testing.T) {
	ctx := context.Background()

	// Every helper degrades to a no-op when caching is disabled
	require.NoError(t, SetCache(ctx, nil, "k", "v", time.Minute))
	var out string
	found, err := GetCache(ctx, nil, "k", &out)
	require.NoError(t, err)
	require.False(t, found)
	require.NoError(t, DeleteCache(ctx, nil, "k"))
}
