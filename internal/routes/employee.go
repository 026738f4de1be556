package routes

import (
	"hr-records/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runEmployeeRouter(group *echo.Group, ctrl *controllers.EmployeeController) {
	group.GET("/employees", ctrl.GetEmployees)
	group.GET("/employees/search", ctrl.SearchEmployees)
	group.GET("/employees/export", ctrl.ExportEmployees)
	group.GET("/employees/code/:code", ctrl.FindEmployeeByCode)
	group.GET("/employees/:id", ctrl.FindEmployee)
	group.POST("/employees", ctrl.CreateEmployee)
	group.PUT("/employees/:id", ctrl.UpdateEmployee)
	group.DELETE("/employees/:id", ctrl.DeleteEmployee)
}
