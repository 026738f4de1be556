package controllers

import (
	"net/http"

	"hr-records/internal/dto"
	"hr-records/internal/services"
	"hr-records/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type RoleController struct {
	service services.RoleServiceInterface
	logger  *zap.Logger
}

func NewRoleController(service services.RoleServiceInterface, logger *zap.Logger) *RoleController {
	return &RoleController{service: service, logger: logger}
}

func (c *RoleController) CreateRole(ctx echo.Context) error {
	var d dto.CreateRoleDTO
	if err := bindAndValidate(ctx, &d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.CreateRole(ctx.Request().Context(), d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusCreated)
}

func (c *RoleController) GetRoles(ctx echo.Context) error {
	p, err := utils.ParsePagination(ctx.QueryParams())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.GetRoles(ctx.Request().Context(), p)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusOK)
}

func (c *RoleController) FindRole(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.GetRole(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusOK)
}

func (c *RoleController) UpdateRole(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var d dto.UpdateRoleDTO
	if err := bindAndValidate(ctx, &d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.UpdateRole(ctx.Request().Context(), id, d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusOK)
}

func (c *RoleController) DeleteRole(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.DeleteRole(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusOK)
}
