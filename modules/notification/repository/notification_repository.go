package repository

import (
	"context"
	"database/sql"

	"go-appointment-api/core/database"
	"go-appointment-api/core/logger"
	"go-appointment-api/modules/notification/entity"

	"github.com/google/uuid"
)

type NotificationRepository struct {
	db database.Database
}

func NewNotificationRepository(db database.Database) *NotificationRepository {
	return &NotificationRepository{db: db}
}

type NotificationRepositoryInterface interface {
	Create(ctx context.Context, notification *entity.Notification) (*entity.Notification, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
}

func (r *NotificationRepository) Create(ctx context.Context, notification *entity.Notification) (*entity.Notification, error) {
	query := `
		INSERT INTO notifications (recipient, kind, payload)
		VALUES ($1, $2, $3)
		RETURNING id, recipient, kind, payload, sent_at, created_at, updated_at
	`

	var created entity.Notification
	err := r.db.GetContext(ctx, &created, query,
		notification.Recipient, notification.Kind, notification.Payload)
	if err != nil {
		logger.Error("NotificationRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	query := `
		SELECT id, recipient, kind, payload, sent_at, created_at, updated_at
		FROM notifications
		WHERE id = $1
	`

	var notification entity.Notification
	if err := r.db.GetContext(ctx, &notification, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("NotificationRepository:GetByID", err)
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE notifications SET sent_at = NOW(), updated_at = NOW() WHERE id = $1`
	if err := r.db.ExecContext(ctx, query, id); err != nil {
		logger.Error("NotificationRepository:MarkSent", err)
		return err
	}
	return nil
}
