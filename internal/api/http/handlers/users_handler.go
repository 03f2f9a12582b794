package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-dashboard/internal/api/dto"
	"github.com/spec-kit/event-dashboard/internal/repository"
)

// UsersHandler serves the users screen: the registered identities.
type UsersHandler struct {
	registry repository.IdentityRegistry
}

// NewUsersHandler constructs handler.
func NewUsersHandler(registry repository.IdentityRegistry) *UsersHandler {
	return &UsersHandler{registry: registry}
}

// List handles GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	identities, err := h.registry.List(c.Context())
	if err != nil {
		return err
	}

	payload := make([]dto.IdentityResponse, 0, len(identities))
	for _, identity := range identities {
		payload = append(payload, *dto.NewIdentityResponse(identity))
	}
	return c.JSON(fiber.Map{"data": payload})
}
