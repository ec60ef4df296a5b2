package service

import (
	"context"
	"time"

	"go-appointment-api/core/constants"
	"go-appointment-api/core/errors"
	"go-appointment-api/core/logger"
	availEntity "go-appointment-api/modules/availability/entity"
	calDto "go-appointment-api/modules/calendar/dto"
	eventEntity "go-appointment-api/modules/event/entity"
	groupEntity "go-appointment-api/modules/group/entity"
	"go-appointment-api/modules/scheduling/dto"

	"github.com/google/uuid"
)

// Collaborator lookups, all snapshot reads. A failing lookup aborts the
// computation; it never degrades to a subset of participants.
type (
	GroupSource interface {
		GetByRoute(ctx context.Context, route string) (*groupEntity.AppointmentGroup, *errors.AppError)
	}

	WindowSource interface {
		WindowsForDay(ctx context.Context, emails []string, weekday time.Weekday) ([]availEntity.WorkingWindow, *errors.AppError)
	}

	BusySource interface {
		BusyBlocks(ctx context.Context, emails []string, start, end time.Time) ([]calDto.BusyBlock, *errors.AppError)
	}

	BookingSource interface {
		ListForGroupDay(ctx context.Context, groupID uuid.UUID, dayStart, dayEnd time.Time) ([]eventEntity.Event, error)
	}
)

// SchedulingService computes the bookable slots of an appointment group for
// one calendar date.
type SchedulingService struct {
	groups   GroupSource
	windows  WindowSource
	busy     BusySource
	bookings BookingSource
	loc      *time.Location
	now      func() time.Time
}

func NewSchedulingService(groups GroupSource, windows WindowSource, busy BusySource, bookings BookingSource, loc *time.Location) *SchedulingService {
	if loc == nil {
		loc = time.UTC
	}
	return &SchedulingService{
		groups:   groups,
		windows:  windows,
		busy:     busy,
		bookings: bookings,
		loc:      loc,
		now:      time.Now,
	}
}

// SlotsForDay runs the full pipeline: date-range and weekend gates, the
// daily booking-frequency gate, working-window intersection, busy-interval
// aggregation, and the slot sweep. Rejected days come back as a normal
// response with IsInvalidDate set; only malformed input, unknown groups, and
// collaborator failures are errors.
func (s *SchedulingService) SlotsForDay(ctx context.Context, route, dateStr string) (*dto.SlotsResponse, *errors.AppError) {
	parsed, err := time.Parse(constants.DateLayout, dateStr)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "date must be YYYY-MM-DD", err)
	}

	group, appErr := s.groups.GetByRoute(ctx, route)
	if appErr != nil {
		return nil, appErr
	}

	date := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, s.loc)
	today := midnight(s.now(), s.loc)
	validation := ValidateDate(date, today, group.MinimumNoticeDays, group.AvailabilityWindowDays)

	resp := &dto.SlotsResponse{
		AppointmentGroupID:         group.ID.String(),
		Date:                       dateStr,
		Duration:                   group.DurationSeconds,
		Slots:                      []dto.TimeSlot{},
		ValidStartDate:             validation.ValidStart.Format(constants.DateLayout),
		EnableSchedulingOnWeekends: group.SchedulingOnWeekends,
	}
	if !validation.Unbounded {
		resp.ValidEndDate = validation.ValidEnd.Format(constants.DateLayout)
	}

	if !validation.Valid {
		resp.IsInvalidDate = true
		return resp, nil
	}
	if IsWeekend(date) && !group.SchedulingOnWeekends {
		resp.IsInvalidDate = true
		return resp, nil
	}

	// The day's own bookings serve the frequency gate and, later, the
	// internal tagging of busy blocks.
	dayStart := date.UTC()
	dayEnd := date.AddDate(0, 0, 1).UTC()
	dayBookings, err := s.bookings.ListForGroupDay(ctx, group.ID, dayStart, dayEnd)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUpstreamUnavailable, "failed to fetch bookings", err)
	}
	if !FrequencyAvailable(group.BookingFrequencyLimit, len(dayBookings)) {
		resp.IsInvalidDate = true
		return resp, nil
	}

	windows, appErr := s.windows.WindowsForDay(ctx, group.MandatoryEmails(), date.Weekday())
	if appErr != nil {
		return nil, appErr
	}
	startClock, endClock := ResolveDayWindow(windows)
	if startClock >= endClock {
		return resp, nil
	}

	windowStart, err := anchorClock(date, startClock, s.loc)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "invalid working window", err)
	}
	windowEnd, err := anchorClock(date, endClock, s.loc)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "invalid working window", err)
	}
	resp.AvailabilityStart = windowStart.Format(time.RFC3339)
	resp.AvailabilityEnd = windowEnd.Format(time.RFC3339)

	blocks, appErr := s.busy.BusyBlocks(ctx, group.MemberEmails(), windowStart, windowEnd)
	if appErr != nil {
		return nil, appErr
	}

	busyIntervals := make([]Interval, 0, len(blocks))
	for _, b := range blocks {
		busyIntervals = append(busyIntervals, Interval{Start: b.Start, End: b.End})
	}
	internal := make([]Interval, 0, len(dayBookings))
	for _, b := range dayBookings {
		internal = append(internal, Interval{Start: b.StartsOn.UTC(), End: b.EndsOn.UTC()})
	}

	occupied := BuildOccupied(busyIntervals, internal)
	duration := time.Duration(group.DurationSeconds) * time.Second
	buffer := time.Duration(group.MinimumBufferSeconds) * time.Second
	resp.Slots = GenerateSlots(windowStart, windowEnd, duration, buffer, occupied)
	resp.TotalSlots = len(resp.Slots)

	logger.Info("SchedulingService:SlotsForDay:Computed",
		"route", route,
		"date", dateStr,
		"occupied", len(occupied),
		"slots", resp.TotalSlots,
	)
	return resp, nil
}
