package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/event-dashboard/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSessionRestored   EventType = "session_restored"
	EventSessionLoggedIn   EventType = "session_logged_in"
	EventSessionRegistered EventType = "session_registered"
	EventSessionLoggedOut  EventType = "session_logged_out"
)

// Actor describes the identity a session event concerns. It is nil-free for
// every event except logout of an already-anonymous session.
type Actor struct {
	IdentityID string      `json:"identity_id,omitempty"`
	Email      string      `json:"email,omitempty"`
	Role       domain.Role `json:"role,omitempty"`
}

// Event represents a session lifecycle change emitted by the manager.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Actor     *Actor    `json:"actor,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewSessionEvent builds an event for the given identity, which may be nil.
func NewSessionEvent(eventType EventType, identity *domain.Identity) Event {
	event := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
	}
	if identity != nil {
		event.Actor = &Actor{
			IdentityID: identity.ID,
			Email:      identity.Email,
			Role:       identity.Role,
		}
	}
	return event
}
