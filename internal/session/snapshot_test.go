package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/event-dashboard/internal/domain"
	"github.com/spec-kit/event-dashboard/internal/session"
)

func TestSnapshotCodec(t *testing.T) {
	t.Run("round trips an identity", func(t *testing.T) {
		dept := "Worship"
		original := &domain.Identity{
			ID:         "7",
			Name:       "Head",
			Email:      "head@example.com",
			Role:       domain.RoleDepartmentHead,
			Department: &dept,
			IsPremium:  true,
		}

		raw, err := session.EncodeSnapshot(original)
		require.NoError(t, err)

		decoded, err := session.DecodeSnapshot(raw)
		require.NoError(t, err)
		assert.Equal(t, original, decoded)
	})

	t.Run("rejects malformed data", func(t *testing.T) {
		_, err := session.DecodeSnapshot([]byte("corrupt"))
		assert.Error(t, err)
	})

	t.Run("rejects an out-of-set role", func(t *testing.T) {
		_, err := session.DecodeSnapshot([]byte(`{"id":"1","name":"X","email":"x@example.com","role":"Root"}`))
		assert.Error(t, err)
	})

	t.Run("rejects a missing role", func(t *testing.T) {
		_, err := session.DecodeSnapshot([]byte(`{"id":"1","name":"X","email":"x@example.com"}`))
		assert.Error(t, err)
	})
}
