package notify

import (
	"context"

	"go.uber.org/zap"
)

// Severity grades user-facing feedback.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notification is a user-visible toast-style message.
type Notification struct {
	Title    string
	Message  string
	Severity Severity
}

// Notifier delivers notifications. Delivery is fire-and-forget; callers never
// consume a result.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// LogNotifier writes notifications to the structured log. It is the default
// sink when no presentation layer is attached.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier builds a notifier backed by the given logger.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the notification at a level matching its severity.
func (n *LogNotifier) Notify(_ context.Context, msg Notification) {
	fields := []zap.Field{
		zap.String("title", msg.Title),
		zap.String("severity", string(msg.Severity)),
	}
	if msg.Severity == SeverityError {
		n.logger.Warn(msg.Message, fields...)
		return
	}
	n.logger.Info(msg.Message, fields...)
}

type discardNotifier struct{}

func (discardNotifier) Notify(context.Context, Notification) {}

// Discard returns a notifier that drops everything.
func Discard() Notifier {
	return discardNotifier{}
}
