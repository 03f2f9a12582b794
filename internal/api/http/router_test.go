package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/event-dashboard/internal/api/http"
	"github.com/spec-kit/event-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/event-dashboard/internal/config"
	"github.com/spec-kit/event-dashboard/internal/events"
	"github.com/spec-kit/event-dashboard/internal/observability"
	"github.com/spec-kit/event-dashboard/internal/repository"
	"github.com/spec-kit/event-dashboard/internal/session"
)

type testServer struct {
	app      *fiber.App
	sessions *session.Manager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	registry := repository.NewSeededRegistry()
	sessions := session.NewManager(config.SessionConfig{}, session.Dependencies{
		Registry:   registry,
		Snapshots:  repository.NewMemorySnapshotStore(),
		Dispatcher: events.NewInMemoryDispatcher(),
	})
	require.NoError(t, sessions.Restore(context.Background()))

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:      handlers.NewHealthHandler("event-dashboard", "test", nil, nil),
		Sessions:    handlers.NewSessionHandler(sessions),
		Events:      handlers.NewEventsHandler(repository.NewEventStore()),
		Tasks:       handlers.NewTasksHandler(repository.NewTaskStore()),
		Users:       handlers.NewUsersHandler(registry),
		Departments: handlers.NewDepartmentsHandler(repository.NewDepartmentStore()),
		Plans:       handlers.NewPlansHandler(repository.NewPlanStore()),
		Manager:     sessions,
	})
	return &testServer{app: app, sessions: sessions}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.app.Test(req)
	require.NoError(t, err)
	return resp
}

func (s *testServer) login(t *testing.T, email, password string) {
	t.Helper()
	resp := s.do(t, http.MethodPost, "/auth/login", fiber.Map{"email": email, "password": password})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload
}

func TestSessionEndpoints(t *testing.T) {
	t.Run("session starts anonymous", func(t *testing.T) {
		s := newTestServer(t)

		resp := s.do(t, http.MethodGet, "/auth/session", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		data := decodeBody(t, resp)["data"].(map[string]any)
		assert.Equal(t, "ANONYMOUS", data["state"])
		assert.Equal(t, false, data["is_authenticated"])
	})

	t.Run("login round trip", func(t *testing.T) {
		s := newTestServer(t)

		resp := s.do(t, http.MethodPost, "/auth/login", fiber.Map{
			"email": "admin@example.com", "password": "password",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		data := decodeBody(t, resp)["data"].(map[string]any)
		assert.Equal(t, "admin@example.com", data["email"])
		assert.Equal(t, "Admin", data["role"])

		resp = s.do(t, http.MethodGet, "/auth/session", nil)
		state := decodeBody(t, resp)["data"].(map[string]any)
		assert.Equal(t, "AUTHENTICATED", state["state"])
	})

	t.Run("bad credentials yield 401", func(t *testing.T) {
		s := newTestServer(t)

		resp := s.do(t, http.MethodPost, "/auth/login", fiber.Map{
			"email": "admin@example.com", "password": "wrongpassword",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("register authenticates and rejects duplicates", func(t *testing.T) {
		s := newTestServer(t)

		resp := s.do(t, http.MethodPost, "/auth/register", fiber.Map{
			"name": "Jane Doe", "email": "jane@example.com", "password": "secret1", "role": "Volunteer",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		data := decodeBody(t, resp)["data"].(map[string]any)
		assert.Equal(t, "Volunteer", data["role"])
		assert.Equal(t, false, data["is_premium"])

		resp = s.do(t, http.MethodPost, "/auth/register", fiber.Map{
			"name": "Other", "email": "jane@example.com", "password": "secret2", "role": "Subscriber",
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("register rejects unknown roles", func(t *testing.T) {
		s := newTestServer(t)

		resp := s.do(t, http.MethodPost, "/auth/register", fiber.Map{
			"name": "X", "email": "x@example.com", "password": "pw", "role": "Overlord",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("logout clears the session", func(t *testing.T) {
		s := newTestServer(t)
		s.login(t, "admin@example.com", "password")

		resp := s.do(t, http.MethodPost, "/auth/logout", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = s.do(t, http.MethodGet, "/auth/session", nil)
		data := decodeBody(t, resp)["data"].(map[string]any)
		assert.Equal(t, "ANONYMOUS", data["state"])
	})
}

func TestRouteGuards(t *testing.T) {
	t.Run("anonymous requests are rejected", func(t *testing.T) {
		s := newTestServer(t)

		for _, path := range []string{"/events", "/tasks", "/users", "/departments", "/plans"} {
			resp := s.do(t, http.MethodGet, path, nil)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "path %s", path)
		}
	})

	t.Run("volunteer sees events and tasks only", func(t *testing.T) {
		s := newTestServer(t)
		s.login(t, "volunteer@example.com", "password")

		resp := s.do(t, http.MethodGet, "/events", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp = s.do(t, http.MethodGet, "/tasks", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		for _, path := range []string{"/users", "/departments", "/plans"} {
			resp := s.do(t, http.MethodGet, path, nil)
			assert.Equal(t, http.StatusForbidden, resp.StatusCode, "path %s", path)
		}

		resp = s.do(t, http.MethodPost, "/events", fiber.Map{"title": "Picnic", "location": "Park"})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("department head manages events and sees users", func(t *testing.T) {
		s := newTestServer(t)
		s.login(t, "department@example.com", "password")

		resp := s.do(t, http.MethodPost, "/events", fiber.Map{"title": "Choir Night", "location": "Hall"})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		resp = s.do(t, http.MethodGet, "/users", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		// Creating departments is admin-only.
		resp = s.do(t, http.MethodPost, "/departments", fiber.Map{"name": "Media"})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin reaches every screen", func(t *testing.T) {
		s := newTestServer(t)
		s.login(t, "admin@example.com", "password")

		for _, path := range []string{"/events", "/tasks", "/users", "/departments", "/plans"} {
			resp := s.do(t, http.MethodGet, path, nil)
			assert.Equal(t, http.StatusOK, resp.StatusCode, "path %s", path)
		}

		resp := s.do(t, http.MethodPost, "/departments", fiber.Map{
			"name": "Media", "description": "Livestreams and recordings.",
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("supervisor sees plans but not users", func(t *testing.T) {
		s := newTestServer(t)
		s.login(t, "supervisor@example.com", "password")

		resp := s.do(t, http.MethodGet, "/plans", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp = s.do(t, http.MethodGet, "/users", nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

func TestHealthEndpoints(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodGet, "/health/live", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
