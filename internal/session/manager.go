package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/event-dashboard/internal/config"
	"github.com/spec-kit/event-dashboard/internal/domain"
	"github.com/spec-kit/event-dashboard/internal/events"
	"github.com/spec-kit/event-dashboard/internal/notify"
	"github.com/spec-kit/event-dashboard/internal/repository"
)

// State tracks the session lifecycle.
type State string

const (
	StateUnknown       State = "UNKNOWN"
	StateAnonymous     State = "ANONYMOUS"
	StateAuthenticated State = "AUTHENTICATED"
)

// Manager owns the single process-wide session. It mediates every identity
// change, answers permission queries, and round-trips the current identity
// through the snapshot store so a restart can resume the session.
type Manager struct {
	registry   repository.IdentityRegistry
	snapshots  repository.SnapshotStore
	dispatcher events.Dispatcher
	notifier   notify.Notifier
	logger     *zap.Logger
	latency    time.Duration

	mu       sync.Mutex
	state    State
	identity *domain.Identity
	loading  bool
}

// Dependencies encapsulates collaborator requirements for the manager.
type Dependencies struct {
	Registry   repository.IdentityRegistry
	Snapshots  repository.SnapshotStore
	Dispatcher events.Dispatcher
	Notifier   notify.Notifier
	Logger     *zap.Logger
}

// NewManager builds the manager. The session starts in the Unknown state and
// stays there until Restore runs.
func NewManager(cfg config.SessionConfig, deps Dependencies) *Manager {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	notifier := deps.Notifier
	if notifier == nil {
		notifier = notify.Discard()
	}
	return &Manager{
		registry:   deps.Registry,
		snapshots:  deps.Snapshots,
		dispatcher: deps.Dispatcher,
		notifier:   notifier,
		logger:     logger,
		latency:    cfg.SimulatedLatency(),
		state:      StateUnknown,
	}
}

// Restore adopts a previously persisted identity snapshot, if one exists and
// decodes cleanly, without re-validating credentials. A corrupt or missing
// snapshot yields an anonymous session. Calling Restore again once the
// session left Unknown is a no-op.
func (m *Manager) Restore(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateUnknown {
		return nil
	}

	raw, err := m.snapshots.Load(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNoSnapshot) {
			m.logger.Warn("snapshot load failed; starting anonymous", zap.Error(err))
		}
		m.state = StateAnonymous
		return nil
	}

	identity, err := DecodeSnapshot(raw)
	if err != nil {
		m.logger.Warn("malformed session snapshot; starting anonymous", zap.Error(err))
		m.state = StateAnonymous
		return nil
	}

	m.state = StateAuthenticated
	m.identity = identity
	m.publish(ctx, events.EventSessionRestored, identity)
	return nil
}

// Login authenticates against the registry using exact, case-sensitive
// matching on both email and password. On success the current session becomes
// Authenticated and the identity snapshot is persisted; on failure the
// session is left untouched.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return ErrEmptyCredentials
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.loading = true
	defer func() { m.loading = false }()

	if err := m.simulateNetwork(ctx); err != nil {
		return err
	}

	identity, err := m.registry.Find(ctx, email, password)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			err = ErrInvalidCredentials
		}
		m.notifier.Notify(ctx, notify.Notification{
			Title:    "Login failed",
			Message:  err.Error(),
			Severity: notify.SeverityError,
		})
		return err
	}

	m.setAuthenticated(ctx, identity, events.EventSessionLoggedIn)
	m.notifier.Notify(ctx, notify.Notification{
		Title:    "Login successful",
		Message:  fmt.Sprintf("Welcome back, %s!", identity.Name),
		Severity: notify.SeveritySuccess,
	})
	return nil
}

// Register creates a new identity and immediately authenticates it. Premium
// entitlement always starts off. An already-registered email fails with
// ErrDuplicateEmail and leaves the session untouched.
func (m *Manager) Register(ctx context.Context, name, email, password string, role domain.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.loading = true
	defer func() { m.loading = false }()

	if err := m.simulateNetwork(ctx); err != nil {
		return err
	}

	exists, err := m.registry.Exists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		m.notifier.Notify(ctx, notify.Notification{
			Title:    "Registration failed",
			Message:  ErrDuplicateEmail.Error(),
			Severity: notify.SeverityError,
		})
		return ErrDuplicateEmail
	}

	identity := &domain.Identity{
		ID:        repository.NewID(),
		Name:      name,
		Email:     email,
		Role:      role,
		IsPremium: false,
	}
	if err := m.registry.Add(ctx, identity, password); err != nil {
		return err
	}

	m.setAuthenticated(ctx, identity, events.EventSessionRegistered)
	m.notifier.Notify(ctx, notify.Notification{
		Title:    "Registration successful",
		Message:  fmt.Sprintf("Welcome, %s! You've registered as a %s.", name, role),
		Severity: notify.SeveritySuccess,
	})
	return nil
}

// Logout clears the session and deletes the persisted snapshot. It always
// succeeds.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.snapshots.Clear(ctx); err != nil {
		m.logger.Warn("snapshot clear failed", zap.Error(err))
	}
	previous := m.identity
	m.state = StateAnonymous
	m.identity = nil
	m.publish(ctx, events.EventSessionLoggedOut, previous)
	m.notifier.Notify(ctx, notify.Notification{
		Title:    "Logged out",
		Message:  "You have been logged out successfully",
		Severity: notify.SeverityInfo,
	})
}

// HasPermission reports whether the current identity's role is an element of
// the allowed set. It is false for any set while not authenticated. Roles are
// never rank-compared.
func (m *Manager) HasPermission(allowed ...domain.Role) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateAuthenticated || m.identity == nil {
		return false
	}
	return m.identity.Role.In(allowed...)
}

// CurrentIdentity returns a copy of the authenticated identity, or nil.
func (m *Manager) CurrentIdentity() *domain.Identity {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.identity.Clone()
}

// IsAuthenticated reports whether a principal is signed in.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state == StateAuthenticated
}

// IsLoading reports whether a login or registration is outstanding.
func (m *Manager) IsLoading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Manager) setAuthenticated(ctx context.Context, identity *domain.Identity, event events.EventType) {
	m.state = StateAuthenticated
	m.identity = identity

	raw, err := EncodeSnapshot(identity)
	if err != nil {
		m.logger.Error("snapshot encode failed", zap.Error(err))
	} else if err := m.snapshots.Save(ctx, raw); err != nil {
		m.logger.Warn("snapshot save failed", zap.Error(err))
	}
	m.publish(ctx, event, identity)
}

// simulateNetwork stands in for the round-trip a real identity backend would
// take. The delay is configurable down to zero.
func (m *Manager) simulateNetwork(ctx context.Context) error {
	if m.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(m.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (m *Manager) publish(ctx context.Context, eventType events.EventType, identity *domain.Identity) {
	if m.dispatcher == nil {
		return
	}
	_ = m.dispatcher.Publish(ctx, events.NewSessionEvent(eventType, identity))
}
