package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-dashboard/internal/api/dto"
	"github.com/spec-kit/event-dashboard/internal/domain"
	"github.com/spec-kit/event-dashboard/internal/session"
)

// SessionHandler exposes the session manager over HTTP for the dashboard
// shell: login, register, logout, and the current-session query the
// navigation uses to decide what to render.
type SessionHandler struct {
	sessions *session.Manager
}

// NewSessionHandler constructs handler.
func NewSessionHandler(sessions *session.Manager) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Login handles POST /auth/login.
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	if err := h.sessions.Login(c.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			return fiber.NewError(http.StatusUnauthorized, err.Error())
		}
		return err
	}

	return c.JSON(fiber.Map{
		"data": dto.NewIdentityResponse(h.sessions.CurrentIdentity()),
	})
}

// Register handles POST /auth/register.
func (h *SessionHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "name, email, password required")
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.sessions.Register(c.Context(), req.Name, req.Email, req.Password, role); err != nil {
		if errors.Is(err, session.ErrDuplicateEmail) {
			return fiber.NewError(http.StatusConflict, err.Error())
		}
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.NewIdentityResponse(h.sessions.CurrentIdentity()),
	})
}

// Logout handles POST /auth/logout. It always succeeds.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	h.sessions.Logout(c.Context())
	return c.JSON(fiber.Map{"data": fiber.Map{"logged_out": true}})
}

// Session handles GET /auth/session.
func (h *SessionHandler) Session(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"data": dto.SessionResponse{
			State:           string(h.sessions.State()),
			IsAuthenticated: h.sessions.IsAuthenticated(),
			IsLoading:       h.sessions.IsLoading(),
			Identity:        dto.NewIdentityResponse(h.sessions.CurrentIdentity()),
		},
	})
}
