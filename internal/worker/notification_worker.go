package worker

import (
	"go.uber.org/zap"

	"github.com/Aadi-1821/RustynKart-backend/internal/service"
)

// StartNotificationWorker wires the notification handlers into the event
// dispatcher. Delivery happens inline on publish; this only registers the
// subscriptions once at boot.
func StartNotificationWorker(notificationService *service.NotificationService, logger *zap.Logger) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
	logger.Info("notification worker ready")
}
