package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go-appointment-api/core/errors"
	"go-appointment-api/core/logger"
	"go-appointment-api/modules/notification/dto"
	"go-appointment-api/modules/notification/entity"
	"go-appointment-api/modules/notification/repository"

	"github.com/hibiken/asynq"
)

// Sender delivers a notification to its recipient. Transports (mail, chat)
// plug in here; the default just logs the delivery.
type Sender interface {
	Send(ctx context.Context, notification *entity.Notification) error
}

type LogSender struct{}

func (LogSender) Send(ctx context.Context, notification *entity.Notification) error {
	logger.Info("Notification:Send",
		"recipient", notification.Recipient,
		"kind", notification.Kind,
		"payload", notification.Payload,
	)
	return nil
}

// NotificationService records notifications and moves their delivery to the
// asynq worker.
type NotificationService struct {
	repo   repository.NotificationRepositoryInterface
	client *asynq.Client
	sender Sender
}

func NewNotificationService(repo repository.NotificationRepositoryInterface, client *asynq.Client, sender Sender) *NotificationService {
	if sender == nil {
		sender = LogSender{}
	}
	return &NotificationService{repo: repo, client: client, sender: sender}
}

// EnqueueBookingConfirmed stores the notification row and schedules its
// delivery. The booking itself is already committed; enqueue failures are
// logged, not surfaced to the guest.
func (s *NotificationService) EnqueueBookingConfirmed(ctx context.Context, recipient string, payload entity.JSONB) *errors.AppError {
	notification, err := s.repo.Create(ctx, &entity.Notification{
		Recipient: recipient,
		Kind:      entity.KindBookingConfirmed,
		Payload:   payload,
	})
	if err != nil {
		return errors.NewAppError(errors.ErrCreateFailed, "failed to record notification", err)
	}

	body, err := json.Marshal(dto.DeliverPayload{NotificationID: notification.ID})
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to encode task payload", err)
	}

	task := asynq.NewTask(dto.TaskTypeBookingConfirmed, body)
	if _, err := s.client.EnqueueContext(ctx, task, asynq.MaxRetry(5)); err != nil {
		logger.Error("NotificationService:EnqueueBookingConfirmed:EnqueueFailed",
			"notification_id", notification.ID, "error", err)
		return nil
	}

	logger.Info("NotificationService:EnqueueBookingConfirmed:Enqueued",
		"notification_id", notification.ID, "recipient", recipient)
	return nil
}

// HandleDeliverTask is the asynq handler for booking confirmations.
func (s *NotificationService) HandleDeliverTask(ctx context.Context, task *asynq.Task) error {
	var payload dto.DeliverPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("decode task payload: %v: %w", err, asynq.SkipRetry)
	}

	notification, err := s.repo.GetByID(ctx, payload.NotificationID)
	if err != nil {
		return fmt.Errorf("load notification %s: %w", payload.NotificationID, err)
	}
	if notification == nil {
		return fmt.Errorf("notification %s not found: %w", payload.NotificationID, asynq.SkipRetry)
	}
	if notification.SentAt != nil {
		return nil
	}

	if err := s.sender.Send(ctx, notification); err != nil {
		return fmt.Errorf("send notification %s: %w", notification.ID, err)
	}
	return s.repo.MarkSent(ctx, notification.ID)
}

// RegisterHandlers wires the service's task handlers onto the worker mux.
func (s *NotificationService) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(dto.TaskTypeBookingConfirmed, s.HandleDeliverTask)
}
