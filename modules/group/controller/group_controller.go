package controller

import (
	coreController "go-appointment-api/core/controller"
	"go-appointment-api/core/errors"
	"go-appointment-api/modules/group/dto"
	"go-appointment-api/modules/group/service"

	"github.com/labstack/echo/v4"
)

type GroupController struct {
	coreController.BaseController
	service *service.GroupService
}

func NewGroupController(svc *service.GroupService) *GroupController {
	return &GroupController{
		BaseController: coreController.NewBaseController(),
		service:        svc,
	}
}

func (ctrl *GroupController) CreateGroup(c echo.Context) error {
	req := new(dto.CreateGroupRequest)
	if err := c.Bind(req); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	group, appErr := ctrl.service.CreateGroup(c.Request().Context(), req)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, group, "appointment group created")
}

func (ctrl *GroupController) GetGroup(c echo.Context) error {
	route := c.Param("route")
	group, appErr := ctrl.service.GetByRoute(c.Request().Context(), route)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, group, "appointment group")
}

func (ctrl *GroupController) ListGroups(c echo.Context) error {
	groups, appErr := ctrl.service.List(c.Request().Context())
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, groups, "appointment groups")
}
