package controllers

import (
	"net/http"

	"hr-records/internal/dto"
	"hr-records/internal/services"
	"hr-records/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type DepartmentController struct {
	service services.DepartmentServiceInterface
	logger  *zap.Logger
}

func NewDepartmentController(service services.DepartmentServiceInterface, logger *zap.Logger) *DepartmentController {
	return &DepartmentController{service: service, logger: logger}
}

func (c *DepartmentController) CreateDepartment(ctx echo.Context) error {
	var d dto.CreateDepartmentDTO
	if err := bindAndValidate(ctx, &d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.CreateDepartment(ctx.Request().Context(), d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusCreated)
}

func (c *DepartmentController) GetDepartments(ctx echo.Context) error {
	p, err := utils.ParsePagination(ctx.QueryParams())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.GetDepartments(ctx.Request().Context(), p)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusOK)
}

func (c *DepartmentController) FindDepartment(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.GetDepartment(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusOK)
}

func (c *DepartmentController) GetDepartmentEmployees(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.GetDepartmentEmployees(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusOK)
}

func (c *DepartmentController) UpdateDepartment(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var d dto.UpdateDepartmentDTO
	if err := bindAndValidate(ctx, &d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.UpdateDepartment(ctx.Request().Context(), id, d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusOK)
}

func (c *DepartmentController) DeleteDepartment(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.DeleteDepartment(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusOK)
}
