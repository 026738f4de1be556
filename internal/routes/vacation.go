package routes

import (
	"hr-records/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runVacationRouter(group *echo.Group, ctrl *controllers.VacationController) {
	group.GET("/vacations", ctrl.GetVacations)
	group.GET("/vacations/:id", ctrl.FindVacation)
	group.POST("/vacations", ctrl.CreateVacation)
	group.PUT("/vacations/:id", ctrl.UpdateVacation)
	group.DELETE("/vacations/:id", ctrl.DeleteVacation)
}
