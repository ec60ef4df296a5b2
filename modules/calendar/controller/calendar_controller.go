package controller

import (
	coreController "go-appointment-api/core/controller"
	"go-appointment-api/core/errors"
	"go-appointment-api/modules/calendar/dto"
	"go-appointment-api/modules/calendar/service"

	"github.com/labstack/echo/v4"
)

type CalendarController struct {
	coreController.BaseController
	service service.CalendarService
}

func NewCalendarController(svc service.CalendarService) *CalendarController {
	return &CalendarController{
		BaseController: coreController.NewBaseController(),
		service:        svc,
	}
}

// Connect returns the Google consent URL for a member email.
// GET /api/v1/calendar/connect?email=
func (ctrl *CalendarController) Connect(c echo.Context) error {
	email := c.QueryParam("email")
	url, appErr := ctrl.service.ConnectURL(c.Request().Context(), email)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, dto.ConnectResponse{AuthURL: url}, "authorization url")
}

// Callback exchanges the authorization code delivered by Google.
// GET /api/v1/calendar/callback?state=&code=
func (ctrl *CalendarController) Callback(c echo.Context) error {
	state := c.QueryParam("state")
	code := c.QueryParam("code")
	if state == "" || code == "" {
		return ctrl.BadRequest(errors.ErrInvalidInput, "state and code are required")
	}

	conn, appErr := ctrl.service.HandleCallback(c.Request().Context(), state, code)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, dto.ConnectionResponse{
		Email:       conn.Email,
		ConnectedAt: conn.UpdatedAt.String(),
	}, "calendar connected")
}

// Disconnect removes a member's calendar connection.
// DELETE /api/v1/calendar/:email
func (ctrl *CalendarController) Disconnect(c echo.Context) error {
	email := c.Param("email")
	if appErr := ctrl.service.Disconnect(c.Request().Context(), email); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, nil, "calendar disconnected")
}
