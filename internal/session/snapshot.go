package session

import (
	"encoding/json"

	"github.com/spec-kit/event-dashboard/internal/domain"
)

// EncodeSnapshot serializes the identity for the durable store. The identity
// carries no credential material, so the snapshot never can either.
func EncodeSnapshot(identity *domain.Identity) ([]byte, error) {
	return json.Marshal(identity)
}

// DecodeSnapshot parses a persisted identity snapshot. A snapshot that does
// not decode into a valid identity is reported as an error so restoration can
// fall back to an anonymous session.
func DecodeSnapshot(raw []byte) (*domain.Identity, error) {
	var identity domain.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		return nil, err
	}
	if _, err := domain.ParseRole(string(identity.Role)); err != nil {
		return nil, err
	}
	return &identity, nil
}
