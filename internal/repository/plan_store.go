package repository

import (
	"context"
	"sync"

	"github.com/spec-kit/event-dashboard/internal/domain"
)

// PlanStore holds the subscription tiers shown on the subscriptions screen.
type PlanStore struct {
	mu    sync.RWMutex
	plans []domain.Plan
}

// NewPlanStore returns a store preloaded with the reference plans.
func NewPlanStore() *PlanStore {
	return &PlanStore{plans: seedPlans()}
}

// List returns plans in insertion order.
func (s *PlanStore) List(_ context.Context) ([]domain.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Plan(nil), s.plans...), nil
}

// GetByID looks up a single plan.
func (s *PlanStore) GetByID(_ context.Context, id string) (*domain.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, plan := range s.plans {
		if plan.ID == id {
			copied := plan
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func seedPlans() []domain.Plan {
	return []domain.Plan{
		{
			ID:          "basic",
			Name:        "Basic",
			Price:       0,
			Description: "Essential event management for individuals and small teams",
			Features: []string{
				"Up to 3 events at a time",
				"Basic task assignment",
				"Up to 10 team members",
				"Limited reporting",
			},
		},
		{
			ID:          "premium",
			Name:        "Premium",
			Price:       29,
			Description: "Advanced features for growing organizations",
			Features: []string{
				"Unlimited events",
				"Smart task assignment",
				"Unlimited team members",
				"Guest list management",
				"Email reminders",
				"Basic customization",
				"Priority support",
			},
			IsPopular: true,
		},
		{
			ID:          "enterprise",
			Name:        "Enterprise",
			Price:       99,
			Description: "Complete solution for large organizations",
			Features: []string{
				"Everything in Premium",
				"Advanced customization",
				"White labeling",
				"API access",
				"Multiple departments",
				"Advanced analytics",
				"Dedicated account manager",
			},
		},
	}
}
