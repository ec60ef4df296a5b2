package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-appointment-api/core/constants"
	"go-appointment-api/core/errors"
	"go-appointment-api/modules/availability/dto"
	"go-appointment-api/modules/availability/entity"
	"go-appointment-api/modules/availability/repository"
)

type AvailabilityService struct {
	repo repository.AvailabilityRepositoryInterface
}

func NewAvailabilityService(repo repository.AvailabilityRepositoryInterface) *AvailabilityService {
	return &AvailabilityService{repo: repo}
}

// WindowsForDay returns the working windows of the given members on the
// given weekday, in canonical clock form.
func (s *AvailabilityService) WindowsForDay(ctx context.Context, emails []string, weekday time.Weekday) ([]entity.WorkingWindow, *errors.AppError) {
	windows, err := s.repo.ListForEmailsOnWeekday(ctx, emails, int(weekday))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUpstreamUnavailable, "failed to fetch working windows", err)
	}
	return windows, nil
}

func (s *AvailabilityService) ListForEmail(ctx context.Context, email string) ([]entity.WorkingWindow, *errors.AppError) {
	windows, err := s.repo.ListForEmail(ctx, email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to fetch working windows", err)
	}
	return windows, nil
}

func (s *AvailabilityService) ReplaceForEmail(ctx context.Context, email string, req *dto.ReplaceWindowsRequest) ([]entity.WorkingWindow, *errors.AppError) {
	if strings.TrimSpace(email) == "" {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "email is required", nil)
	}

	windows := make([]entity.WorkingWindow, 0, len(req.Windows))
	for _, w := range req.Windows {
		if w.Weekday < 0 || w.Weekday > 6 {
			return nil, errors.NewAppError(errors.ErrInvalidRequestData,
				fmt.Sprintf("weekday out of range: %d", w.Weekday), nil)
		}
		start, err := CanonicalClock(w.StartClock)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidRequestData,
				fmt.Sprintf("invalid start_clock %q", w.StartClock), err)
		}
		end, err := CanonicalClock(w.EndClock)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidRequestData,
				fmt.Sprintf("invalid end_clock %q", w.EndClock), err)
		}
		// Canonical form makes lexical comparison chronological.
		if start >= end {
			return nil, errors.NewAppError(errors.ErrInvalidRequestData,
				fmt.Sprintf("window start %s is not before end %s", start, end), nil)
		}
		windows = append(windows, entity.WorkingWindow{
			Email:      email,
			Weekday:    w.Weekday,
			StartClock: start,
			EndClock:   end,
		})
	}

	saved, err := s.repo.ReplaceForEmail(ctx, email, windows)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "failed to replace working windows", err)
	}
	return saved, nil
}

// CanonicalClock normalizes a clock string to zero-padded "HH:MM:SS".
// Accepts "H:M", "HH:MM" and "HH:MM:SS" input; "24:00:00" is the only value
// allowed past "23:59:59".
func CanonicalClock(clock string) (string, error) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return "", fmt.Errorf("clock %q is not HH:MM[:SS]", clock)
	}
	if len(parts) == 2 {
		parts = append(parts, "00")
	}

	var h, m, sec int
	if _, err := fmt.Sscanf(strings.Join(parts, ":"), "%d:%d:%d", &h, &m, &sec); err != nil {
		return "", fmt.Errorf("clock %q is not numeric: %w", clock, err)
	}
	if h == 24 && m == 0 && sec == 0 {
		return constants.DayClockEnd, nil
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return "", fmt.Errorf("clock %q out of range", clock)
	}
	return fmt.Sprintf("%02d:%02d:%02d", h, m, sec), nil
}
