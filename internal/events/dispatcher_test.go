package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/event-dashboard/internal/domain"
	"github.com/spec-kit/event-dashboard/internal/events"
)

func TestInMemoryDispatcher(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers to subscribers of the event type", func(t *testing.T) {
		dispatcher := events.NewInMemoryDispatcher()

		var seen []events.EventType
		dispatcher.Subscribe(events.EventSessionLoggedIn, func(_ context.Context, e events.Event) error {
			seen = append(seen, e.Type)
			return nil
		})
		dispatcher.Subscribe(events.EventSessionLoggedOut, func(_ context.Context, e events.Event) error {
			seen = append(seen, e.Type)
			return nil
		})

		event := events.NewSessionEvent(events.EventSessionLoggedIn, &domain.Identity{
			ID: "1", Email: "admin@example.com", Role: domain.RoleAdmin,
		})
		require.NoError(t, dispatcher.Publish(ctx, event))

		assert.Equal(t, []events.EventType{events.EventSessionLoggedIn}, seen)
	})

	t.Run("handler errors do not stop later handlers", func(t *testing.T) {
		dispatcher := events.NewInMemoryDispatcher()

		var called bool
		dispatcher.Subscribe(events.EventSessionLoggedOut, func(context.Context, events.Event) error {
			return errors.New("boom")
		})
		dispatcher.Subscribe(events.EventSessionLoggedOut, func(context.Context, events.Event) error {
			called = true
			return nil
		})

		require.NoError(t, dispatcher.Publish(ctx, events.NewSessionEvent(events.EventSessionLoggedOut, nil)))
		assert.True(t, called)
	})
}

func TestNewSessionEvent(t *testing.T) {
	t.Run("captures actor metadata", func(t *testing.T) {
		event := events.NewSessionEvent(events.EventSessionRegistered, &domain.Identity{
			ID: "7", Email: "jane@example.com", Role: domain.RoleVolunteer,
		})
		assert.NotEmpty(t, event.ID)
		assert.False(t, event.Timestamp.IsZero())
		require.NotNil(t, event.Actor)
		assert.Equal(t, "jane@example.com", event.Actor.Email)
	})

	t.Run("nil identity yields no actor", func(t *testing.T) {
		event := events.NewSessionEvent(events.EventSessionLoggedOut, nil)
		assert.Nil(t, event.Actor)
	})
}
