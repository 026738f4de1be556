package routes

import (
	"hr-records/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runDepartmentRouter(group *echo.Group, ctrl *controllers.DepartmentController) {
	group.GET("/departments", ctrl.GetDepartments)
	group.GET("/departments/:id", ctrl.FindDepartment)
	group.GET("/departments/:id/employees", ctrl.GetDepartmentEmployees)
	group.POST("/departments", ctrl.CreateDepartment)
	group.PUT("/departments/:id", ctrl.UpdateDepartment)
	group.DELETE("/departments/:id", ctrl.DeleteDepartment)
}
