package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-dashboard/internal/api/dto"
	"github.com/spec-kit/event-dashboard/internal/domain"
	"github.com/spec-kit/event-dashboard/internal/repository"
	apperrors "github.com/spec-kit/event-dashboard/pkg/util"
)

// EventsHandler serves the events screen data.
type EventsHandler struct {
	events *repository.EventStore
}

// NewEventsHandler constructs handler.
func NewEventsHandler(events *repository.EventStore) *EventsHandler {
	return &EventsHandler{events: events}
}

// List handles GET /events.
func (h *EventsHandler) List(c *fiber.Ctx) error {
	events, err := h.events.List(c.Context())
	if err != nil {
		return err
	}

	payload := make([]dto.EventResponse, 0, len(events))
	for _, event := range events {
		payload = append(payload, eventResponse(event))
	}
	return c.JSON(fiber.Map{"data": payload})
}

// Get handles GET /events/:id.
func (h *EventsHandler) Get(c *fiber.Ctx) error {
	event, err := h.events.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("event", nil)
		}
		return err
	}
	return c.JSON(fiber.Map{"data": eventResponse(*event)})
}

// Create handles POST /events.
func (h *EventsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Title == "" || req.Location == "" {
		return fiber.NewError(http.StatusBadRequest, "title and location required")
	}

	event := domain.Event{
		Title:       req.Title,
		Date:        req.Date,
		Location:    req.Location,
		Type:        domain.EventType(req.Type),
		Description: req.Description,
	}
	if err := h.events.Create(c.Context(), &event); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": eventResponse(event)})
}

func eventResponse(event domain.Event) dto.EventResponse {
	return dto.EventResponse{
		ID:                 event.ID,
		Title:              event.Title,
		Date:               event.Date,
		Location:           event.Location,
		Type:               string(event.Type),
		TotalAttendees:     event.TotalAttendees,
		ConfirmedAttendees: event.ConfirmedAttendees,
		Tasks:              event.TaskCount,
		CompletedTasks:     event.CompletedTasks,
		Description:        event.Description,
		Status:             string(event.Status),
	}
}
