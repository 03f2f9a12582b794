package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-dashboard/internal/domain"
	"github.com/spec-kit/event-dashboard/internal/session"
	apperrors "github.com/spec-kit/event-dashboard/pkg/util"
)

// RequireAuthenticated rejects requests while the session is anonymous.
func RequireAuthenticated(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !sessions.IsAuthenticated() {
			return apperrors.NewUnauthorized("sign in required")
		}
		return c.Next()
	}
}

// RequireRole denies the route unless the session's role is an element of
// the allowed set. An empty set only requires authentication. Roles are never
// rank-compared.
func RequireRole(sessions *session.Manager, allowed ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !sessions.IsAuthenticated() {
			return apperrors.NewUnauthorized("sign in required")
		}
		if len(allowed) == 0 {
			return c.Next()
		}
		if !sessions.HasPermission(allowed...) {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}
