package router

import (
	"go-appointment-api/core/middleware"
	"go-appointment-api/modules/group/controller"

	"github.com/labstack/echo/v4"
)

type GroupRouter struct {
	GroupController *controller.GroupController
}

func NewGroupRouter(groupController *controller.GroupController) *GroupRouter {
	return &GroupRouter{GroupController: groupController}
}

func (r *GroupRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	groupRoutes := v1.Group("/groups")
	groupRoutes.POST("", r.GroupController.CreateGroup)
	groupRoutes.GET("", r.GroupController.ListGroups)
	groupRoutes.GET("/:route", r.GroupController.GetGroup)
}
