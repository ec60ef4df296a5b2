package router

import (
	"go-appointment-api/core/middleware"
	"go-appointment-api/modules/event/controller"

	"github.com/labstack/echo/v4"
)

type EventRouter struct {
	EventController *controller.EventController
}

func NewEventRouter(eventController *controller.EventController) *EventRouter {
	return &EventRouter{EventController: eventController}
}

func (r *EventRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	publicRoutes := v1.Group("/public", mw.RateLimiter())
	publicRoutes.POST("/groups/:route/book", r.EventController.Book)

	v1.GET("/events/:name", r.EventController.GetEvent)
}
