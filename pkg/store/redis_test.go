package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beaconlabs/beacon/pkg/store"
)

func setupRedisStore(t *testing.T, namespace string) (*store.RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return store.NewRedisStore(client, namespace), mr
}

func TestRedisStore_SetGet(t *testing.T) {
	t.Parallel()

	s, _ := setupRedisStore(t, "")
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "visitor", "tok", 0))

	value, err := s.Get(ctx, "visitor")
	require.NoError(t, err)
	assert.Equal(t, "tok", value)
}

func TestRedisStore_GetMissing(t *testing.T) {
	t.Parallel()

	s, _ := setupRedisStore(t, "")

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRedisStore_Namespace(t *testing.T) {
	t.Parallel()

	s, mr := setupRedisStore(t, "beacon")
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "visit", "tok", 0))

	// keys are prefixed on the wire
	assert.True(t, mr.Exists("beacon:visit"))
	assert.False(t, mr.Exists("visit"))

	value, err := s.Get(ctx, "visit")
	require.NoError(t, err)
	assert.Equal(t, "tok", value)
}

func TestRedisStore_Expiry(t *testing.T) {
	t.Parallel()

	s, mr := setupRedisStore(t, "")
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "short", "v", time.Minute))

	// miniredis only expires keys when the clock is advanced manually
	mr.FastForward(2 * time.Minute)

	_, err := s.Get(ctx, "short")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRedisStore_Delete(t *testing.T) {
	t.Parallel()

	s, _ := setupRedisStore(t, "")
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", "v", 0))
	require.NoError(t, s.Delete(ctx, "k"))

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.NoError(t, s.Delete(ctx, "k"))
}
