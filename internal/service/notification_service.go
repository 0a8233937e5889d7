package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/complaint-service/internal/events"
)

// NotificationService logs notification stubs for domain events. Outbound
// email/webhook delivery is simulated only.
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

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventComplaintSubmitted, n.handleComplaintSubmitted)
	n.dispatcher.Subscribe(events.EventComplaintStatusChanged, n.handleComplaintStatusChanged)
	n.dispatcher.Subscribe(events.EventComplaintWithdrawn, n.handleComplaintWithdrawn)
	n.dispatcher.Subscribe(events.EventComplaintDeleted, n.handleComplaintDeleted)
	n.dispatcher.Subscribe(events.EventCommentAdded, n.handleCommentAdded)
}

func (n *NotificationService) handleComplaintSubmitted(_ context.Context, event events.Event) error {
	n.logger.Info("ComplaintSubmitted", zap.String("complaint_id", event.ComplaintID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleComplaintStatusChanged(_ context.Context, event events.Event) error {
	n.logger.Info("ComplaintStatusChanged", zap.String("complaint_id", event.ComplaintID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleComplaintWithdrawn(_ context.Context, event events.Event) error {
	n.logger.Info("ComplaintWithdrawn", zap.String("complaint_id", event.ComplaintID))
	return nil
}

func (n *NotificationService) handleComplaintDeleted(_ context.Context, event events.Event) error {
	n.logger.Info("ComplaintDeleted", zap.String("complaint_id", event.ComplaintID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleCommentAdded(_ context.Context, event events.Event) error {
	n.logger.Info("CommentAdded", zap.String("complaint_id", event.ComplaintID), zap.Any("payload", event.Payload))
	return nil
}
