package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/event-dashboard/internal/domain"
	"github.com/spec-kit/event-dashboard/internal/repository"
)

func TestMemoryRegistry_Find(t *testing.T) {
	ctx := context.Background()

	t.Run("matches seeded accounts exactly", func(t *testing.T) {
		registry := repository.NewSeededRegistry()

		identity, err := registry.Find(ctx, "supervisor@example.com", "password")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleSupervisor, identity.Role)
		require.NotNil(t, identity.Department)
		assert.Equal(t, "Cleaning", *identity.Department)
	})

	t.Run("comparison is case sensitive", func(t *testing.T) {
		registry := repository.NewSeededRegistry()

		_, err := registry.Find(ctx, "Supervisor@example.com", "password")
		assert.ErrorIs(t, err, repository.ErrIdentityNotFound)
		_, err = registry.Find(ctx, "supervisor@example.com", "PASSWORD")
		assert.ErrorIs(t, err, repository.ErrIdentityNotFound)
	})

	t.Run("first match wins when passwords collide", func(t *testing.T) {
		registry := repository.NewSeededRegistry()
		require.NoError(t, registry.Add(ctx, &domain.Identity{
			ID: "99", Name: "Late", Email: "late@example.com", Role: domain.RoleSubscriber,
		}, "password"))

		identity, err := registry.Find(ctx, "admin@example.com", "password")
		require.NoError(t, err)
		assert.Equal(t, "1", identity.ID)
	})

	t.Run("returned identity is a copy", func(t *testing.T) {
		registry := repository.NewSeededRegistry()

		first, err := registry.Find(ctx, "admin@example.com", "password")
		require.NoError(t, err)
		first.Name = "mutated"

		second, err := registry.Find(ctx, "admin@example.com", "password")
		require.NoError(t, err)
		assert.Equal(t, "Admin User", second.Name)
	})
}

func TestMemoryRegistry_Exists(t *testing.T) {
	ctx := context.Background()
	registry := repository.NewSeededRegistry()

	exists, err := registry.Exists(ctx, "volunteer@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = registry.Exists(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryRegistry_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects duplicate email", func(t *testing.T) {
		registry := repository.NewSeededRegistry()

		err := registry.Add(ctx, &domain.Identity{
			ID: "x", Name: "Dup", Email: "admin@example.com", Role: domain.RoleVolunteer,
		}, "pw")
		assert.ErrorIs(t, err, repository.ErrEmailTaken)
	})

	t.Run("new identities list after the seeds", func(t *testing.T) {
		registry := repository.NewSeededRegistry()
		require.NoError(t, registry.Add(ctx, &domain.Identity{
			ID: "5", Name: "Jane Doe", Email: "jane@example.com", Role: domain.RoleVolunteer,
		}, "secret1"))

		identities, err := registry.List(ctx)
		require.NoError(t, err)
		require.Len(t, identities, 5)
		assert.Equal(t, "jane@example.com", identities[4].Email)
	})
}
