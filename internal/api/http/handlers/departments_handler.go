package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-dashboard/internal/api/dto"
	"github.com/spec-kit/event-dashboard/internal/domain"
	"github.com/spec-kit/event-dashboard/internal/repository"
)

// DepartmentsHandler serves the departments screen data.
type DepartmentsHandler struct {
	departments *repository.DepartmentStore
}

// NewDepartmentsHandler constructs handler.
func NewDepartmentsHandler(departments *repository.DepartmentStore) *DepartmentsHandler {
	return &DepartmentsHandler{departments: departments}
}

// List handles GET /departments.
func (h *DepartmentsHandler) List(c *fiber.Ctx) error {
	departments, err := h.departments.List(c.Context())
	if err != nil {
		return err
	}

	payload := make([]dto.DepartmentResponse, 0, len(departments))
	for _, department := range departments {
		payload = append(payload, departmentResponse(department))
	}
	return c.JSON(fiber.Map{"data": payload})
}

// Create handles POST /departments.
func (h *DepartmentsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "name required")
	}

	department := domain.Department{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.departments.Create(c.Context(), &department); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": departmentResponse(department)})
}

func departmentResponse(department domain.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:          department.ID,
		Name:        department.Name,
		Description: department.Description,
		MemberCount: department.MemberCount,
		HeadCount:   department.HeadCount,
		LeadName:    department.LeadName,
		LeadEmail:   department.LeadEmail,
	}
}
