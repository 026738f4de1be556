package routes

import (
	"hr-records/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runRoleRouter(group *echo.Group, ctrl *controllers.RoleController) {
	group.GET("/roles", ctrl.GetRoles)
	group.GET("/roles/:id", ctrl.FindRole)
	group.POST("/roles", ctrl.CreateRole)
	group.PUT("/roles/:id", ctrl.UpdateRole)
	group.DELETE("/roles/:id", ctrl.DeleteRole)
}
