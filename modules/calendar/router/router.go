package router

import (
	"go-appointment-api/core/middleware"
	"go-appointment-api/modules/calendar/controller"

	"github.com/labstack/echo/v4"
)

type CalendarRouter struct {
	controller *controller.CalendarController
}

func NewCalendarRouter(controller *controller.CalendarController) *CalendarRouter {
	return &CalendarRouter{controller: controller}
}

func (r *CalendarRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	calendarRoutes := v1.Group("/calendar")
	calendarRoutes.GET("/connect", r.controller.Connect)
	calendarRoutes.GET("/callback", r.controller.Callback)
	calendarRoutes.DELETE("/:email", r.controller.Disconnect)
}
