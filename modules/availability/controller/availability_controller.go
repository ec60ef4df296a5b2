package controller

import (
	coreController "go-appointment-api/core/controller"
	"go-appointment-api/core/errors"
	"go-appointment-api/modules/availability/dto"
	"go-appointment-api/modules/availability/service"

	"github.com/labstack/echo/v4"
)

type AvailabilityController struct {
	coreController.BaseController
	service *service.AvailabilityService
}

func NewAvailabilityController(svc *service.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{
		BaseController: coreController.NewBaseController(),
		service:        svc,
	}
}

func (ctrl *AvailabilityController) ReplaceWindows(c echo.Context) error {
	email := c.Param("email")
	req := new(dto.ReplaceWindowsRequest)
	if err := c.Bind(req); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	windows, appErr := ctrl.service.ReplaceForEmail(c.Request().Context(), email, req)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, windows, "working windows replaced")
}

func (ctrl *AvailabilityController) ListWindows(c echo.Context) error {
	email := c.Param("email")
	windows, appErr := ctrl.service.ListForEmail(c.Request().Context(), email)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, windows, "working windows")
}
