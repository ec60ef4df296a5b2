package event

import (
	"time"

	"go-appointment-api/core/database"
	"go-appointment-api/core/middleware"
	"go-appointment-api/modules/event/controller"
	"go-appointment-api/modules/event/repository"
	"go-appointment-api/modules/event/router"
	"go-appointment-api/modules/event/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the event module and registers the public booking route.
// The group, slot, and notification collaborators come from their own
// modules' Init calls.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware,
	groups service.GroupSource, slots service.SlotSource,
	notifications service.ConfirmationDispatcher, loc *time.Location) *service.EventService {

	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(repo, groups, slots, notifications, loc)
	ctrl := controller.NewEventController(svc)
	rtr := router.NewEventRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
