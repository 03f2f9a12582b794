package repository

import (
	"context"
	"sync"

	"github.com/spec-kit/event-dashboard/internal/domain"
)

// DepartmentStore holds the organizational units shown on the departments
// screen.
type DepartmentStore struct {
	mu          sync.RWMutex
	departments []domain.Department
}

// NewDepartmentStore returns a store preloaded with the reference departments.
func NewDepartmentStore() *DepartmentStore {
	return &DepartmentStore{departments: seedDepartments()}
}

// List returns departments in insertion order.
func (s *DepartmentStore) List(_ context.Context) ([]domain.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Department(nil), s.departments...), nil
}

// GetByID looks up a single department.
func (s *DepartmentStore) GetByID(_ context.Context, id string) (*domain.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, department := range s.departments {
		if department.ID == id {
			copied := department
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

// Create appends a new department, minting its ID.
func (s *DepartmentStore) Create(_ context.Context, department *domain.Department) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	department.ID = NewID()
	s.departments = append(s.departments, *department)
	return nil
}

func seedDepartments() []domain.Department {
	return []domain.Department{
		{
			ID:          "1",
			Name:        "Worship",
			Description: "Leads worship services and manages music for events.",
			MemberCount: 12,
			HeadCount:   1,
			LeadName:    "Department Head",
			LeadEmail:   "department@example.com",
		},
		{
			ID:          "2",
			Name:        "Logistics",
			Description: "Handles venue setup, equipment management, and physical arrangements.",
			MemberCount: 8,
			HeadCount:   1,
			LeadName:    "Robert Johnson",
			LeadEmail:   "robert@example.com",
		},
		{
			ID:          "3",
			Name:        "Hospitality",
			Description: "Manages guest services, welcomes visitors, and coordinates refreshments.",
			MemberCount: 15,
			HeadCount:   2,
			LeadName:    "Sarah Wilson",
			LeadEmail:   "sarah@example.com",
		},
		{
			ID:          "4",
			Name:        "Audio/Visual",
			Description: "Handles sound systems, lighting, presentations, and media needs.",
			MemberCount: 6,
			HeadCount:   1,
			LeadName:    "David Smith",
			LeadEmail:   "david@example.com",
		},
		{
			ID:          "5",
			Name:        "Cleaning",
			Description: "Maintains cleanliness of venues before and after events.",
			MemberCount: 10,
			HeadCount:   1,
			LeadName:    "Supervisor Name",
			LeadEmail:   "supervisor@example.com",
		},
		{
			ID:          "6",
			Name:        "Greeting",
			Description: "Welcomes attendees and provides information at events.",
			MemberCount: 8,
			HeadCount:   1,
			LeadName:    "Mary Johnson",
			LeadEmail:   "mary@example.com",
		},
	}
}
