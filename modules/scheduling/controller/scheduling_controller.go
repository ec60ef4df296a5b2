package controller

import (
	coreController "go-appointment-api/core/controller"
	"go-appointment-api/core/errors"
	"go-appointment-api/modules/scheduling/service"

	"github.com/labstack/echo/v4"
)

type SchedulingController struct {
	coreController.BaseController
	service *service.SchedulingService
}

func NewSchedulingController(svc *service.SchedulingService) *SchedulingController {
	return &SchedulingController{
		BaseController: coreController.NewBaseController(),
		service:        svc,
	}
}

// GetSlots returns the free slots of a group for one date.
// GET /api/v1/public/groups/:route/slots?date=YYYY-MM-DD
func (ctrl *SchedulingController) GetSlots(c echo.Context) error {
	route := c.Param("route")
	date := c.QueryParam("date")
	if date == "" {
		return ctrl.BadRequest(errors.ErrInvalidInput, "date query parameter is required")
	}

	resp, appErr := ctrl.service.SlotsForDay(c.Request().Context(), route, date)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, resp, "time slots")
}
