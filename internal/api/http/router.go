package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/event-dashboard/internal/auth"
	"github.com/spec-kit/event-dashboard/internal/domain"
	"github.com/spec-kit/event-dashboard/internal/session"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Sessions    *handlers.SessionHandler
	Events      *handlers.EventsHandler
	Tasks       *handlers.TasksHandler
	Users       *handlers.UsersHandler
	Departments *handlers.DepartmentsHandler
	Plans       *handlers.PlansHandler
	Manager     *session.Manager
}

// RegisterRoutes wires HTTP routes with the same role gates as the dashboard
// navigation.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Sessions.Login)
	authGroup.Post("/register", cfg.Sessions.Register)
	authGroup.Post("/logout", cfg.Sessions.Logout)
	authGroup.Get("/session", cfg.Sessions.Session)

	anyRole := auth.RequireAuthenticated(cfg.Manager)
	managerRoles := auth.RequireRole(cfg.Manager, domain.RoleAdmin, domain.RoleDepartmentHead)

	events := app.Group("/events", anyRole)
	events.Get("/", cfg.Events.List)
	events.Get("/:id", cfg.Events.Get)
	events.Post("/", managerRoles, cfg.Events.Create)

	tasks := app.Group("/tasks", anyRole)
	tasks.Get("/", cfg.Tasks.List)
	tasks.Get("/:id", cfg.Tasks.Get)

	users := app.Group("/users", managerRoles)
	users.Get("/", cfg.Users.List)

	departments := app.Group("/departments", managerRoles)
	departments.Get("/", cfg.Departments.List)
	departments.Post("/", auth.RequireRole(cfg.Manager, domain.RoleAdmin), cfg.Departments.Create)

	plans := app.Group("/plans", auth.RequireRole(cfg.Manager,
		domain.RoleAdmin, domain.RoleDepartmentHead, domain.RoleSupervisor, domain.RoleSubscriber))
	plans.Get("/", cfg.Plans.List)
}
