package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Aadi-1821/RustynKart-backend/internal/events"
)

// NotificationService reacts to domain events. Delivery is a logging stub;
// hooking a mail or webhook sender in replaces handleEvent only.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService builds the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to the events worth notifying on.
func (s *NotificationService) RegisterHandlers() {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Subscribe(events.EventUserRegistered, s.handleEvent)
	s.dispatcher.Subscribe(events.EventOrderPlaced, s.handleEvent)
	s.dispatcher.Subscribe(events.EventOrderStatus, s.handleEvent)
}

func (s *NotificationService) handleEvent(_ context.Context, event events.Event) error {
	s.logger.Info("notification",
		zap.String("event_id", event.ID),
		zap.String("type", string(event.Type)),
		zap.String("subject_id", event.SubjectID),
		zap.Any("payload", event.Payload),
	)
	return nil
}
