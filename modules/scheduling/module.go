package scheduling

import (
	"time"

	"go-appointment-api/core/database"
	"go-appointment-api/core/middleware"
	eventRepository "go-appointment-api/modules/event/repository"
	"go-appointment-api/modules/scheduling/controller"
	"go-appointment-api/modules/scheduling/router"
	"go-appointment-api/modules/scheduling/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the scheduling module and registers the public slots
// route. Group, window, and busy sources come from the other modules; the
// booking source is the event repository directly.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware,
	groups service.GroupSource, windows service.WindowSource,
	busy service.BusySource, loc *time.Location) *service.SchedulingService {

	bookings := eventRepository.NewEventRepository(db)
	svc := service.NewSchedulingService(groups, windows, busy, bookings, loc)
	ctrl := controller.NewSchedulingController(svc)
	rtr := router.NewSchedulingRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
