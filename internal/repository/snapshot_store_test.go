package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/event-dashboard/internal/repository"
)

func TestMemorySnapshotStore(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store reports no snapshot", func(t *testing.T) {
		store := repository.NewMemorySnapshotStore()
		_, err := store.Load(ctx)
		assert.ErrorIs(t, err, repository.ErrNoSnapshot)
	})

	t.Run("save then load round trips", func(t *testing.T) {
		store := repository.NewMemorySnapshotStore()
		require.NoError(t, store.Save(ctx, []byte(`{"id":"1"}`)))

		raw, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, `{"id":"1"}`, string(raw))
	})

	t.Run("save overwrites the single record", func(t *testing.T) {
		store := repository.NewMemorySnapshotStore()
		require.NoError(t, store.Save(ctx, []byte("first")))
		require.NoError(t, store.Save(ctx, []byte("second")))

		raw, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "second", string(raw))
	})

	t.Run("clear removes the record", func(t *testing.T) {
		store := repository.NewMemorySnapshotStore()
		require.NoError(t, store.Save(ctx, []byte("data")))
		require.NoError(t, store.Clear(ctx))

		_, err := store.Load(ctx)
		assert.ErrorIs(t, err, repository.ErrNoSnapshot)
	})

	t.Run("clear on empty store succeeds", func(t *testing.T) {
		store := repository.NewMemorySnapshotStore()
		assert.NoError(t, store.Clear(ctx))
	})
}
