package calendar

import (
	"go-appointment-api/core/cache"
	"go-appointment-api/core/database"
	"go-appointment-api/core/middleware"
	"go-appointment-api/modules/calendar/controller"
	"go-appointment-api/modules/calendar/repository"
	"go-appointment-api/modules/calendar/router"
	"go-appointment-api/modules/calendar/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the calendar module, registers routes, and returns the
// service for the scheduling module's busy-interval fetches.
func Init(e *echo.Echo, db database.Database, c *cache.Cache, mw *middleware.Middleware) service.CalendarService {
	repo := repository.NewCalendarRepository(db)
	svc := service.NewCalendarService(repo, c)
	ctrl := controller.NewCalendarController(svc)
	rtr := router.NewCalendarRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
