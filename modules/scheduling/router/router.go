package router

import (
	"go-appointment-api/core/middleware"
	"go-appointment-api/modules/scheduling/controller"

	"github.com/labstack/echo/v4"
)

type SchedulingRouter struct {
	SchedulingController *controller.SchedulingController
}

func NewSchedulingRouter(schedulingController *controller.SchedulingController) *SchedulingRouter {
	return &SchedulingRouter{SchedulingController: schedulingController}
}

func (r *SchedulingRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	publicRoutes := v1.Group("/public", mw.RateLimiter())
	publicRoutes.GET("/groups/:route/slots", r.SchedulingController.GetSlots)
}
