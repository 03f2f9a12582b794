package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/spec-kit/event-dashboard/internal/domain"
)

var (
	// ErrIdentityNotFound signals no credential record matched.
	ErrIdentityNotFound = errors.New("identity not found")
	// ErrEmailTaken signals a registration against an existing email.
	ErrEmailTaken = errors.New("email already registered")
)

// IdentityRegistry is the pluggable credential store behind the session
// manager. A real identity backend can replace the seeded one without
// changing the manager's control flow.
type IdentityRegistry interface {
	// Find returns the identity whose email and password both match, or
	// ErrIdentityNotFound. Matching is exact and case-sensitive.
	Find(ctx context.Context, email, password string) (*domain.Identity, error)
	// Exists reports whether any identity is registered under the email.
	Exists(ctx context.Context, email string) (bool, error)
	// Add registers a new identity with its credential.
	Add(ctx context.Context, identity *domain.Identity, password string) error
	// List returns all registered identities in deterministic order.
	List(ctx context.Context) ([]*domain.Identity, error)
}

// NewID mints an opaque unique identifier.
func NewID() string {
	return uuid.NewString()
}
