package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/event-dashboard/internal/events"
)

// NotificationService logs session lifecycle events as they are published.
// It is the audit trail behind the user-facing notifier.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to session events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventSessionRestored, n.handleSessionEvent)
	n.dispatcher.Subscribe(events.EventSessionLoggedIn, n.handleSessionEvent)
	n.dispatcher.Subscribe(events.EventSessionRegistered, n.handleSessionEvent)
	n.dispatcher.Subscribe(events.EventSessionLoggedOut, n.handleSessionEvent)
}

func (n *NotificationService) handleSessionEvent(_ context.Context, event events.Event) error {
	fields := []zap.Field{
		zap.String("event_id", event.ID),
		zap.Time("timestamp", event.Timestamp),
	}
	if event.Actor != nil {
		fields = append(fields,
			zap.String("identity_id", event.Actor.IdentityID),
			zap.String("email", event.Actor.Email),
			zap.String("role", string(event.Actor.Role)),
		)
	}
	n.logger.Info(string(event.Type), fields...)
	return nil
}
