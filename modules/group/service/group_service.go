package service

import (
	"context"
	"fmt"
	"strings"

	"go-appointment-api/core/cache"
	"go-appointment-api/core/constants"
	"go-appointment-api/core/errors"
	"go-appointment-api/core/logger"
	"go-appointment-api/core/utils"
	"go-appointment-api/modules/group/dto"
	"go-appointment-api/modules/group/entity"
	"go-appointment-api/modules/group/repository"

	"github.com/gosimple/slug"
)

// GroupService manages appointment group configuration. Reads go through a
// short-TTL Redis cache; a group config is treated as an immutable snapshot
// for the duration of one slot computation.
type GroupService struct {
	repo  repository.GroupRepositoryInterface
	cache *cache.Cache
}

func NewGroupService(repo repository.GroupRepositoryInterface, c *cache.Cache) *GroupService {
	return &GroupService{repo: repo, cache: c}
}

func (s *GroupService) CreateGroup(ctx context.Context, req *dto.CreateGroupRequest) (*entity.AppointmentGroup, *errors.AppError) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "group name is required", nil)
	}
	if req.DurationSeconds <= 0 {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "duration_seconds must be positive", nil)
	}
	if req.MinimumBufferSeconds < 0 {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "minimum_buffer_seconds cannot be negative", nil)
	}
	if len(req.Members) == 0 {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "at least one member is required", nil)
	}

	route, appErr := s.resolveRoute(ctx, req.Name)
	if appErr != nil {
		return nil, appErr
	}

	group := &entity.AppointmentGroup{
		Name:                   req.Name,
		Route:                  route,
		DurationSeconds:        req.DurationSeconds,
		MinimumBufferSeconds:   req.MinimumBufferSeconds,
		MinimumNoticeDays:      req.MinimumNoticeDays,
		AvailabilityWindowDays: req.AvailabilityWindowDays,
		BookingFrequencyLimit:  req.BookingFrequencyLimit,
		SchedulingOnWeekends:   req.SchedulingOnWeekends,
	}
	for _, m := range req.Members {
		if strings.TrimSpace(m.Email) == "" {
			return nil, errors.NewAppError(errors.ErrInvalidRequestData, "member email is required", nil)
		}
		group.Members = append(group.Members, entity.GroupMember{Email: m.Email, IsMandatory: m.IsMandatory})
	}

	created, err := s.repo.Create(ctx, group)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to create appointment group", err)
	}

	logger.Info("GroupService:CreateGroup:Created", "route", created.Route, "members", len(created.Members))
	return created, nil
}

// resolveRoute slugifies the name and appends a short suffix on collision.
func (s *GroupService) resolveRoute(ctx context.Context, name string) (string, *errors.AppError) {
	route := slug.Make(name)
	exists, err := s.repo.RouteExists(ctx, route)
	if err != nil {
		return "", errors.NewAppError(errors.ErrGetFailed, "failed to check route", err)
	}
	if exists {
		route = fmt.Sprintf("%s-%s", route, strings.ToLower(utils.GenerateID()))
	}
	return route, nil
}

func (s *GroupService) GetByRoute(ctx context.Context, route string) (*entity.AppointmentGroup, *errors.AppError) {
	key := constants.RedisKeyGroupByRoute + route

	var cached entity.AppointmentGroup
	if s.cache != nil {
		hit, err := s.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			logger.Warn("GroupService:GetByRoute:CacheError", "route", route, "error", err)
		} else if hit {
			return &cached, nil
		}
	}

	group, err := s.repo.GetByRoute(ctx, route)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to fetch appointment group", err)
	}
	if group == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "appointment group not found", nil)
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, group, constants.GroupCacheTTL); err != nil {
			logger.Warn("GroupService:GetByRoute:CacheSetError", "route", route, "error", err)
		}
	}
	return group, nil
}

func (s *GroupService) List(ctx context.Context) ([]entity.AppointmentGroup, *errors.AppError) {
	groups, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to list appointment groups", err)
	}
	return groups, nil
}
