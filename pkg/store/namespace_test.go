package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beaconlabs/beacon/pkg/store"
)

func TestWithNamespace(t *testing.T) {
	t.Parallel()

	backing := store.NewMemoryStore(0)
	defer backing.Close()
	ctx := context.Background()

	scoped := store.WithNamespace(backing, "app.test")
	require.NoError(t, scoped.Set(ctx, "visit", "tok", 0))

	// scoped reads resolve, raw keys live under the prefix
	value, err := scoped.Get(ctx, "visit")
	require.NoError(t, err)
	assert.Equal(t, "tok", value)

	value, err = backing.Get(ctx, "app.test:visit")
	require.NoError(t, err)
	assert.Equal(t, "tok", value)

	_, err = backing.Get(ctx, "visit")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, scoped.Delete(ctx, "visit"))
	_, err = scoped.Get(ctx, "visit")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithNamespace_EmptyPassthrough(t *testing.T) {
	t.Parallel()

	backing := store.NewMemoryStore(0)
	defer backing.Close()

	assert.Same(t, store.Store(backing), store.WithNamespace(backing, ""))
}
