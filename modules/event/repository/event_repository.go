package repository

import (
	"context"
	"database/sql"
	"time"

	"go-appointment-api/core/database"
	"go-appointment-api/core/logger"
	"go-appointment-api/modules/event/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type EventRepository struct {
	DB database.Database
}

func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{DB: db}
}

type EventRepositoryInterface interface {
	Create(ctx context.Context, event *entity.Event) (*entity.Event, error)
	ListForGroupDay(ctx context.Context, groupID uuid.UUID, dayStart, dayEnd time.Time) ([]entity.Event, error)
	GetByName(ctx context.Context, name string) (*entity.Event, error)
}

// IsUniqueViolation reports a unique-index violation on (group_id,
// starts_on), the last line of defense against double booking.
func IsUniqueViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == "23505"
}

func (r *EventRepository) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	query := `
		INSERT INTO events (name, group_id, subject, starts_on, ends_on, booker_email)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, group_id, subject, starts_on, ends_on, booker_email, created_at, updated_at
	`

	var created entity.Event
	err := r.DB.GetContext(ctx, &created, query,
		event.Name, event.GroupID, event.Subject, event.StartsOn, event.EndsOn, event.BookerEmail)
	if err != nil {
		if !IsUniqueViolation(err) {
			logger.Error("EventRepository:Create", err)
		}
		return nil, err
	}
	return &created, nil
}

// ListForGroupDay returns the group's bookings that lie entirely inside
// [dayStart, dayEnd), ordered by end instant ascending.
func (r *EventRepository) ListForGroupDay(ctx context.Context, groupID uuid.UUID, dayStart, dayEnd time.Time) ([]entity.Event, error) {
	query := `
		SELECT id, name, group_id, subject, starts_on, ends_on, booker_email, created_at, updated_at
		FROM events
		WHERE group_id = $1
		  AND starts_on >= $2 AND starts_on < $3
		  AND ends_on >= $2 AND ends_on < $3
		ORDER BY ends_on ASC
	`

	var events []entity.Event
	if err := r.DB.SelectContext(ctx, &events, query, groupID, dayStart, dayEnd); err != nil {
		logger.Error("EventRepository:ListForGroupDay", err)
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) GetByName(ctx context.Context, name string) (*entity.Event, error) {
	query := `
		SELECT id, name, group_id, subject, starts_on, ends_on, booker_email, created_at, updated_at
		FROM events
		WHERE name = $1
	`

	var event entity.Event
	if err := r.DB.GetContext(ctx, &event, query, name); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetByName", err)
		return nil, err
	}
	return &event, nil
}
