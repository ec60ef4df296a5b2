package service

import (
	"context"
	"strings"
	"time"

	"go-appointment-api/core/constants"
	"go-appointment-api/core/errors"
	"go-appointment-api/core/logger"
	"go-appointment-api/core/utils"
	"go-appointment-api/modules/event/dto"
	"go-appointment-api/modules/event/entity"
	"go-appointment-api/modules/event/repository"
	groupEntity "go-appointment-api/modules/group/entity"
	notifEntity "go-appointment-api/modules/notification/entity"
	schedDto "go-appointment-api/modules/scheduling/dto"
)

type (
	GroupSource interface {
		GetByRoute(ctx context.Context, route string) (*groupEntity.AppointmentGroup, *errors.AppError)
	}

	SlotSource interface {
		SlotsForDay(ctx context.Context, route, date string) (*schedDto.SlotsResponse, *errors.AppError)
	}

	ConfirmationDispatcher interface {
		EnqueueBookingConfirmed(ctx context.Context, recipient string, payload notifEntity.JSONB) *errors.AppError
	}
)

// EventService books slots. Every booking is re-validated against the live
// slot computation right before insert; the unique index on
// (group_id, starts_on) closes the remaining race.
type EventService struct {
	repo          repository.EventRepositoryInterface
	groups        GroupSource
	slots         SlotSource
	notifications ConfirmationDispatcher
	loc           *time.Location
}

func NewEventService(repo repository.EventRepositoryInterface, groups GroupSource, slots SlotSource, notifications ConfirmationDispatcher, loc *time.Location) *EventService {
	if loc == nil {
		loc = time.UTC
	}
	return &EventService{
		repo:          repo,
		groups:        groups,
		slots:         slots,
		notifications: notifications,
		loc:           loc,
	}
}

func (s *EventService) CreateBooking(ctx context.Context, route string, req *dto.BookRequest) (*entity.Event, *errors.AppError) {
	if strings.TrimSpace(req.Email) == "" {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "email is required", nil)
	}
	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "start_time must be RFC3339", err)
	}
	start = start.UTC()

	group, appErr := s.groups.GetByRoute(ctx, route)
	if appErr != nil {
		return nil, appErr
	}

	dateStr := start.In(s.loc).Format(constants.DateLayout)
	resp, appErr := s.slots.SlotsForDay(ctx, route, dateStr)
	if appErr != nil {
		return nil, appErr
	}
	if resp.IsInvalidDate {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "date is not bookable", nil)
	}

	var end time.Time
	found := false
	for _, slot := range resp.Slots {
		if slot.StartTime.Equal(start) {
			end = slot.EndTime
			found = true
			break
		}
	}
	if !found {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "requested slot is no longer available", nil)
	}

	subject := req.Subject
	if subject == "" {
		subject = group.Name + " with " + req.Email
	}

	event := &entity.Event{
		Name:        utils.GenerateID(),
		GroupID:     group.ID,
		Subject:     subject,
		StartsOn:    start,
		EndsOn:      end.UTC(),
		BookerEmail: req.Email,
	}
	created, err := s.repo.Create(ctx, event)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "slot was just booked by someone else", err)
		}
		return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to record booking", err)
	}

	if appErr := s.notifications.EnqueueBookingConfirmed(ctx, created.BookerEmail, notifEntity.JSONB{
		"event_name": created.Name,
		"subject":    created.Subject,
		"group":      route,
		"starts_on":  created.StartsOn.Format(time.RFC3339),
		"ends_on":    created.EndsOn.Format(time.RFC3339),
	}); appErr != nil {
		logger.Warn("EventService:CreateBooking:NotificationFailed",
			"event", created.Name, "error", appErr)
	}

	logger.Info("EventService:CreateBooking:Booked",
		"event", created.Name, "group", route, "starts_on", created.StartsOn)
	return created, nil
}

func (s *EventService) GetByName(ctx context.Context, name string) (*entity.Event, *errors.AppError) {
	event, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to fetch booking", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "booking not found", nil)
	}
	return event, nil
}
