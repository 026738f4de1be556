package routes

import (
	"hr-records/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runUserRouter(group *echo.Group, ctrl *controllers.UserController) {
	group.GET("/users", ctrl.GetUsers)
	group.GET("/users/:id", ctrl.FindUser)
	group.POST("/users", ctrl.CreateUser)
	group.PUT("/users/:id", ctrl.UpdateUser)
	group.DELETE("/users/:id", ctrl.DeleteUser)
}
