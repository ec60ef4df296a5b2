package controller

import (
	coreController "go-appointment-api/core/controller"
	"go-appointment-api/core/errors"
	"go-appointment-api/modules/event/dto"
	"go-appointment-api/modules/event/service"

	"github.com/labstack/echo/v4"
)

type EventController struct {
	coreController.BaseController
	service *service.EventService
}

func NewEventController(svc *service.EventService) *EventController {
	return &EventController{
		BaseController: coreController.NewBaseController(),
		service:        svc,
	}
}

// Book books a free slot on a group.
// POST /api/v1/public/groups/:route/book
func (ctrl *EventController) Book(c echo.Context) error {
	route := c.Param("route")
	req := new(dto.BookRequest)
	if err := c.Bind(req); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	event, appErr := ctrl.service.CreateBooking(c.Request().Context(), route, req)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, event, "slot booked")
}

// GetEvent returns a booking by its public name.
// GET /api/v1/events/:name
func (ctrl *EventController) GetEvent(c echo.Context) error {
	name := c.Param("name")
	event, appErr := ctrl.service.GetByName(c.Request().Context(), name)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, event, "booking")
}
