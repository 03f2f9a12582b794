package repository

import (
	"context"
	"sync"

	"github.com/spec-kit/event-dashboard/internal/domain"
)

type memoryRecord struct {
	identity domain.Identity
	password string
}

// MemoryRegistry is the registry backend standing in for a real identity
// store. Lookup order is insertion order, so login resolves first-match
// against the seed accounts plus any since-registered identities.
type MemoryRegistry struct {
	mu      sync.RWMutex
	records []memoryRecord
}

// NewMemoryRegistry returns an empty registry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{}
}

// NewSeededRegistry returns a registry preloaded with the reference accounts.
func NewSeededRegistry() *MemoryRegistry {
	r := NewMemoryRegistry()
	for _, seed := range seedIdentities() {
		r.records = append(r.records, seed)
	}
	return r
}

// Find matches email and password with exact string equality.
func (r *MemoryRegistry) Find(_ context.Context, email, password string) (*domain.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, record := range r.records {
		if record.identity.Email == email && record.password == password {
			return record.identity.Clone(), nil
		}
	}
	return nil, ErrIdentityNotFound
}

// Exists reports whether the email is registered.
func (r *MemoryRegistry) Exists(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, record := range r.records {
		if record.identity.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// Add appends a new identity. The email must be unique.
func (r *MemoryRegistry) Add(_ context.Context, identity *domain.Identity, password string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, record := range r.records {
		if record.identity.Email == identity.Email {
			return ErrEmailTaken
		}
	}
	r.records = append(r.records, memoryRecord{identity: *identity.Clone(), password: password})
	return nil
}

// List returns identities in insertion order.
func (r *MemoryRegistry) List(_ context.Context) ([]*domain.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	identities := make([]*domain.Identity, 0, len(r.records))
	for _, record := range r.records {
		identities = append(identities, record.identity.Clone())
	}
	return identities, nil
}

func seedIdentities() []memoryRecord {
	worship := "Worship"
	cleaning := "Cleaning"
	greeting := "Greeting"

	return []memoryRecord{
		{
			identity: domain.Identity{
				ID:        "1",
				Name:      "Admin User",
				Email:     "admin@example.com",
				Role:      domain.RoleAdmin,
				IsPremium: true,
			},
			password: "password",
		},
		{
			identity: domain.Identity{
				ID:         "2",
				Name:       "Department Head",
				Email:      "department@example.com",
				Role:       domain.RoleDepartmentHead,
				Department: &worship,
				IsPremium:  true,
			},
			password: "password",
		},
		{
			identity: domain.Identity{
				ID:         "3",
				Name:       "Supervisor",
				Email:      "supervisor@example.com",
				Role:       domain.RoleSupervisor,
				Department: &cleaning,
			},
			password: "password",
		},
		{
			identity: domain.Identity{
				ID:         "4",
				Name:       "Volunteer",
				Email:      "volunteer@example.com",
				Role:       domain.RoleVolunteer,
				Department: &greeting,
			},
			password: "password",
		},
	}
}
