package group

import (
	"go-appointment-api/core/cache"
	"go-appointment-api/core/database"
	"go-appointment-api/core/middleware"
	"go-appointment-api/modules/group/controller"
	"go-appointment-api/modules/group/repository"
	"go-appointment-api/modules/group/router"
	"go-appointment-api/modules/group/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the group module, registers routes, and returns the
// service for other modules to consume.
func Init(e *echo.Echo, db database.Database, c *cache.Cache, mw *middleware.Middleware) *service.GroupService {
	repo := repository.NewGroupRepository(db)
	svc := service.NewGroupService(repo, c)
	ctrl := controller.NewGroupController(svc)
	rtr := router.NewGroupRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
