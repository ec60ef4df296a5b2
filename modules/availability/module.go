package availability

import (
	"go-appointment-api/core/database"
	"go-appointment-api/core/middleware"
	"go-appointment-api/modules/availability/controller"
	"go-appointment-api/modules/availability/repository"
	"go-appointment-api/modules/availability/router"
	"go-appointment-api/modules/availability/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the availability module, registers routes, and returns
// the service for the scheduling module.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) *service.AvailabilityService {
	repo := repository.NewAvailabilityRepository(db)
	svc := service.NewAvailabilityService(repo)
	ctrl := controller.NewAvailabilityController(svc)
	rtr := router.NewAvailabilityRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
