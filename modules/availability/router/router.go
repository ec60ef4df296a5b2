package router

import (
	"go-appointment-api/core/middleware"
	"go-appointment-api/modules/availability/controller"

	"github.com/labstack/echo/v4"
)

type AvailabilityRouter struct {
	AvailabilityController *controller.AvailabilityController
}

func NewAvailabilityRouter(availabilityController *controller.AvailabilityController) *AvailabilityRouter {
	return &AvailabilityRouter{AvailabilityController: availabilityController}
}

func (r *AvailabilityRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	availabilityRoutes := v1.Group("/availability")
	availabilityRoutes.PUT("/:email", r.AvailabilityController.ReplaceWindows)
	availabilityRoutes.GET("/:email", r.AvailabilityController.ListWindows)
}
