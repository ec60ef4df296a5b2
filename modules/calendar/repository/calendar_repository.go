package repository

import (
	"context"
	"database/sql"

	"go-appointment-api/core/database"
	"go-appointment-api/core/logger"
	"go-appointment-api/modules/calendar/entity"

	"github.com/jmoiron/sqlx"
)

type CalendarRepository interface {
	GetByEmail(ctx context.Context, email string) (*entity.CalendarConnection, error)
	GetByEmails(ctx context.Context, emails []string) ([]entity.CalendarConnection, error)
	Upsert(ctx context.Context, conn *entity.CalendarConnection) (*entity.CalendarConnection, error)
	UpdateToken(ctx context.Context, conn *entity.CalendarConnection) error
	DeleteByEmail(ctx context.Context, email string) error
}

type calendarRepository struct {
	db database.Database
}

func NewCalendarRepository(db database.Database) CalendarRepository {
	return &calendarRepository{db: db}
}

func (r *calendarRepository) GetByEmail(ctx context.Context, email string) (*entity.CalendarConnection, error) {
	query := `
		SELECT id, email, access_token, refresh_token, token_expires_at, created_at, updated_at
		FROM calendar_connections
		WHERE email = $1
	`
	var conn entity.CalendarConnection
	err := r.db.GetContext(ctx, &conn, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("CalendarRepository:GetByEmail", err)
		return nil, err
	}
	return &conn, nil
}

func (r *calendarRepository) GetByEmails(ctx context.Context, emails []string) ([]entity.CalendarConnection, error) {
	if len(emails) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, email, access_token, refresh_token, token_expires_at, created_at, updated_at
		FROM calendar_connections
		WHERE email IN (?)
	`, emails)
	if err != nil {
		logger.Error("CalendarRepository:GetByEmails:Build", err)
		return nil, err
	}
	query = r.db.SQLx().Rebind(query)

	var connections []entity.CalendarConnection
	if err := r.db.SelectContext(ctx, &connections, query, args...); err != nil {
		logger.Error("CalendarRepository:GetByEmails", err)
		return nil, err
	}
	return connections, nil
}

func (r *calendarRepository) Upsert(ctx context.Context, conn *entity.CalendarConnection) (*entity.CalendarConnection, error) {
	query := `
		INSERT INTO calendar_connections (email, access_token, refresh_token, token_expires_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE
		SET access_token = EXCLUDED.access_token,
		    refresh_token = EXCLUDED.refresh_token,
		    token_expires_at = EXCLUDED.token_expires_at,
		    updated_at = NOW()
		RETURNING id, email, access_token, refresh_token, token_expires_at, created_at, updated_at
	`
	var saved entity.CalendarConnection
	err := r.db.GetContext(ctx, &saved, query,
		conn.Email, conn.AccessToken, conn.RefreshToken, conn.TokenExpiresAt)
	if err != nil {
		logger.Error("CalendarRepository:Upsert", err)
		return nil, err
	}
	return &saved, nil
}

func (r *calendarRepository) UpdateToken(ctx context.Context, conn *entity.CalendarConnection) error {
	query := `
		UPDATE calendar_connections
		SET access_token = $2, refresh_token = $3, token_expires_at = $4, updated_at = NOW()
		WHERE email = $1
	`
	err := r.db.ExecContext(ctx, query,
		conn.Email, conn.AccessToken, conn.RefreshToken, conn.TokenExpiresAt)
	if err != nil {
		logger.Error("CalendarRepository:UpdateToken", err)
	}
	return err
}

func (r *calendarRepository) DeleteByEmail(ctx context.Context, email string) error {
	err := r.db.ExecContext(ctx, `DELETE FROM calendar_connections WHERE email = $1`, email)
	if err != nil {
		logger.Error("CalendarRepository:DeleteByEmail", err)
	}
	return err
}
