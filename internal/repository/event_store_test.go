package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/event-dashboard/internal/domain"
	"github.com/spec-kit/event-dashboard/internal/repository"
)

func TestEventStore(t *testing.T) {
	ctx := context.Background()

	t.Run("lists seeded events in order", func(t *testing.T) {
		store := repository.NewEventStore()

		events, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, events, 5)
		assert.Equal(t, "Sunday Service", events[0].Title)
		assert.Equal(t, domain.EventStatusCompleted, events[4].Status)
	})

	t.Run("get by id", func(t *testing.T) {
		store := repository.NewEventStore()

		event, err := store.GetByID(ctx, "2")
		require.NoError(t, err)
		assert.Equal(t, "Johnson Wedding", event.Title)

		_, err = store.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("create mints an id and defaults status", func(t *testing.T) {
		store := repository.NewEventStore()

		event := domain.Event{Title: "Spring Gala", Location: "Fellowship Hall"}
		require.NoError(t, store.Create(ctx, &event))

		assert.NotEmpty(t, event.ID)
		assert.Equal(t, domain.EventStatusUpcoming, event.Status)

		events, err := store.List(ctx)
		require.NoError(t, err)
		assert.Len(t, events, 6)
	})
}

func TestTaskStore_ListFiltersByDepartment(t *testing.T) {
	ctx := context.Background()
	store := repository.NewTaskStore()

	all, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 5)

	worship, err := store.List(ctx, "Worship")
	require.NoError(t, err)
	require.Len(t, worship, 2)
	for _, task := range worship {
		assert.Equal(t, "Worship", task.Department)
	}
}

func TestPlanStore_Seeds(t *testing.T) {
	ctx := context.Background()
	store := repository.NewPlanStore()

	plans, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 3)
	assert.Equal(t, "basic", plans[0].ID)
	assert.True(t, plans[1].IsPopular)

	plan, err := store.GetByID(ctx, "enterprise")
	require.NoError(t, err)
	assert.Equal(t, 99, plan.Price)
}
