package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-dashboard/internal/api/dto"
	"github.com/spec-kit/event-dashboard/internal/repository"
)

// PlansHandler serves the subscriptions screen data.
type PlansHandler struct {
	plans *repository.PlanStore
}

// NewPlansHandler constructs handler.
func NewPlansHandler(plans *repository.PlanStore) *PlansHandler {
	return &PlansHandler{plans: plans}
}

// List handles GET /plans.
func (h *PlansHandler) List(c *fiber.Ctx) error {
	plans, err := h.plans.List(c.Context())
	if err != nil {
		return err
	}

	payload := make([]dto.PlanResponse, 0, len(plans))
	for _, plan := range plans {
		payload = append(payload, dto.PlanResponse{
			ID:          plan.ID,
			Name:        plan.Name,
			Price:       plan.Price,
			Description: plan.Description,
			Features:    plan.Features,
			IsPopular:   plan.IsPopular,
		})
	}
	return c.JSON(fiber.Map{"data": payload})
}
