package repository

import (
	"context"
	"database/sql"

	"go-appointment-api/core/database"
	"go-appointment-api/core/logger"
	"go-appointment-api/modules/group/entity"
)

// GroupRepository handles appointment group database operations.
type GroupRepository struct {
	DB database.Database
}

func NewGroupRepository(db database.Database) *GroupRepository {
	return &GroupRepository{DB: db}
}

type GroupRepositoryInterface interface {
	Create(ctx context.Context, group *entity.AppointmentGroup) (*entity.AppointmentGroup, error)
	GetByRoute(ctx context.Context, route string) (*entity.AppointmentGroup, error)
	List(ctx context.Context) ([]entity.AppointmentGroup, error)
	RouteExists(ctx context.Context, route string) (bool, error)
}

func (r *GroupRepository) Create(ctx context.Context, group *entity.AppointmentGroup) (*entity.AppointmentGroup, error) {
	tx, err := r.DB.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("GroupRepository:Create:Begin", err)
		return nil, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO appointment_groups
			(name, route, duration_seconds, minimum_buffer_seconds, minimum_notice_days,
			 availability_window_days, booking_frequency_limit, scheduling_on_weekends)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, name, route, duration_seconds, minimum_buffer_seconds, minimum_notice_days,
		          availability_window_days, booking_frequency_limit, scheduling_on_weekends,
		          created_at, updated_at
	`

	var created entity.AppointmentGroup
	err = tx.GetContext(ctx, &created, query,
		group.Name, group.Route, group.DurationSeconds, group.MinimumBufferSeconds,
		group.MinimumNoticeDays, group.AvailabilityWindowDays,
		group.BookingFrequencyLimit, group.SchedulingOnWeekends)
	if err != nil {
		logger.Error("GroupRepository:Create", err)
		return nil, err
	}

	memberQuery := `
		INSERT INTO appointment_group_members (group_id, email, is_mandatory)
		VALUES ($1, $2, $3)
		RETURNING id, group_id, email, is_mandatory
	`
	for _, m := range group.Members {
		var member entity.GroupMember
		if err := tx.GetContext(ctx, &member, memberQuery, created.ID, m.Email, m.IsMandatory); err != nil {
			logger.Error("GroupRepository:Create:Member", err)
			return nil, err
		}
		created.Members = append(created.Members, member)
	}

	if err := tx.Commit(); err != nil {
		logger.Error("GroupRepository:Create:Commit", err)
		return nil, err
	}
	return &created, nil
}

func (r *GroupRepository) GetByRoute(ctx context.Context, route string) (*entity.AppointmentGroup, error) {
	query := `
		SELECT id, name, route, duration_seconds, minimum_buffer_seconds, minimum_notice_days,
		       availability_window_days, booking_frequency_limit, scheduling_on_weekends,
		       created_at, updated_at
		FROM appointment_groups WHERE route = $1
	`

	var group entity.AppointmentGroup
	err := r.DB.GetContext(ctx, &group, query, route)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("GroupRepository:GetByRoute", err)
		return nil, err
	}

	memberQuery := `
		SELECT id, group_id, email, is_mandatory
		FROM appointment_group_members
		WHERE group_id = $1
		ORDER BY email
	`
	if err := r.DB.SelectContext(ctx, &group.Members, memberQuery, group.ID); err != nil {
		logger.Error("GroupRepository:GetByRoute:Members", err)
		return nil, err
	}

	return &group, nil
}

func (r *GroupRepository) List(ctx context.Context) ([]entity.AppointmentGroup, error) {
	query := `
		SELECT id, name, route, duration_seconds, minimum_buffer_seconds, minimum_notice_days,
		       availability_window_days, booking_frequency_limit, scheduling_on_weekends,
		       created_at, updated_at
		FROM appointment_groups
		ORDER BY created_at DESC
	`

	var groups []entity.AppointmentGroup
	if err := r.DB.SelectContext(ctx, &groups, query); err != nil {
		logger.Error("GroupRepository:List", err)
		return nil, err
	}
	return groups, nil
}

func (r *GroupRepository) RouteExists(ctx context.Context, route string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM appointment_groups WHERE route = $1)`
	if err := r.DB.GetContext(ctx, &exists, query, route); err != nil {
		logger.Error("GroupRepository:RouteExists", err)
		return false, err
	}
	return exists, nil
}
