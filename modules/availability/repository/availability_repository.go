package repository

import (
	"context"

	"go-appointment-api/core/database"
	"go-appointment-api/core/logger"
	"go-appointment-api/modules/availability/entity"

	"github.com/jmoiron/sqlx"
)

type AvailabilityRepository struct {
	DB database.Database
}

func NewAvailabilityRepository(db database.Database) *AvailabilityRepository {
	return &AvailabilityRepository{DB: db}
}

type AvailabilityRepositoryInterface interface {
	ListForEmailsOnWeekday(ctx context.Context, emails []string, weekday int) ([]entity.WorkingWindow, error)
	ListForEmail(ctx context.Context, email string) ([]entity.WorkingWindow, error)
	ReplaceForEmail(ctx context.Context, email string, windows []entity.WorkingWindow) ([]entity.WorkingWindow, error)
}

func (r *AvailabilityRepository) ListForEmailsOnWeekday(ctx context.Context, emails []string, weekday int) ([]entity.WorkingWindow, error) {
	if len(emails) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, email, weekday, start_clock, end_clock
		FROM working_windows
		WHERE email IN (?) AND weekday = ?
		ORDER BY email, start_clock
	`, emails, weekday)
	if err != nil {
		logger.Error("AvailabilityRepository:ListForEmailsOnWeekday:Build", err)
		return nil, err
	}
	query = r.DB.SQLx().Rebind(query)

	var windows []entity.WorkingWindow
	if err := r.DB.SelectContext(ctx, &windows, query, args...); err != nil {
		logger.Error("AvailabilityRepository:ListForEmailsOnWeekday", err)
		return nil, err
	}
	return windows, nil
}

func (r *AvailabilityRepository) ListForEmail(ctx context.Context, email string) ([]entity.WorkingWindow, error) {
	query := `
		SELECT id, email, weekday, start_clock, end_clock
		FROM working_windows
		WHERE email = $1
		ORDER BY weekday, start_clock
	`

	var windows []entity.WorkingWindow
	if err := r.DB.SelectContext(ctx, &windows, query, email); err != nil {
		logger.Error("AvailabilityRepository:ListForEmail", err)
		return nil, err
	}
	return windows, nil
}

func (r *AvailabilityRepository) ReplaceForEmail(ctx context.Context, email string, windows []entity.WorkingWindow) ([]entity.WorkingWindow, error) {
	tx, err := r.DB.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("AvailabilityRepository:ReplaceForEmail:Begin", err)
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM working_windows WHERE email = $1`, email); err != nil {
		logger.Error("AvailabilityRepository:ReplaceForEmail:Delete", err)
		return nil, err
	}

	insertQuery := `
		INSERT INTO working_windows (email, weekday, start_clock, end_clock)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email, weekday, start_clock, end_clock
	`
	var saved []entity.WorkingWindow
	for _, w := range windows {
		var row entity.WorkingWindow
		if err := tx.GetContext(ctx, &row, insertQuery, email, w.Weekday, w.StartClock, w.EndClock); err != nil {
			logger.Error("AvailabilityRepository:ReplaceForEmail:Insert", err)
			return nil, err
		}
		saved = append(saved, row)
	}

	if err := tx.Commit(); err != nil {
		logger.Error("AvailabilityRepository:ReplaceForEmail:Commit", err)
		return nil, err
	}
	return saved, nil
}
