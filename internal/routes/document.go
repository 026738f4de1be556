package routes

import (
	"hr-records/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runDocumentRouter(group *echo.Group, ctrl *controllers.DocumentController) {
	group.GET("/documents", ctrl.GetDocuments)
	group.GET("/documents/:id", ctrl.FindDocument)
	group.POST("/documents", ctrl.CreateDocument)
	group.PUT("/documents/:id", ctrl.UpdateDocument)
	group.DELETE("/documents/:id", ctrl.DeleteDocument)
}
