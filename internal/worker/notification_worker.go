package worker

import (
	"github.com/spec-kit/event-dashboard/internal/service"
)

// StartNotificationWorker registers session event handlers.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}
