package controllers

import (
	"net/http"

	"hr-records/internal/dto"
	"hr-records/internal/services"
	"hr-records/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type DocumentController struct {
	service services.DocumentServiceInterface
	logger  *zap.Logger
}

func NewDocumentController(service services.DocumentServiceInterface, logger *zap.Logger) *DocumentController {
	return &DocumentController{service: service, logger: logger}
}

func (c *DocumentController) CreateDocument(ctx echo.Context) error {
	var d dto.CreateDocumentDTO
	if err := bindAndValidate(ctx, &d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.CreateDocument(ctx.Request().Context(), d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusCreated)
}

func (c *DocumentController) GetDocuments(ctx echo.Context) error {
	p, err := utils.ParsePagination(ctx.QueryParams())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.GetDocuments(ctx.Request().Context(), p)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusOK)
}

func (c *DocumentController) FindDocument(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.GetDocument(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusOK)
}

func (c *DocumentController) UpdateDocument(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var d dto.UpdateDocumentDTO
	if err := bindAndValidate(ctx, &d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.UpdateDocument(ctx.Request().Context(), id, d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusOK)
}

func (c *DocumentController) DeleteDocument(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.DeleteDocument(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusOK)
}
