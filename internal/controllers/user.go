package controllers

import (
	"net/http"

	"hr-records/internal/dto"
	"hr-records/internal/services"
	"hr-records/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type UserController struct {
	service services.UserServiceInterface
	logger  *zap.Logger
}

func NewUserController(service services.UserServiceInterface, logger *zap.Logger) *UserController {
	return &UserController{service: service, logger: logger}
}

func (c *UserController) CreateUser(ctx echo.Context) error {
	var d dto.CreateUserDTO
	if err := bindAndValidate(ctx, &d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.CreateUser(ctx.Request().Context(), d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusCreated)
}

func (c *UserController) GetUsers(ctx echo.Context) error {
	p, err := utils.ParsePagination(ctx.QueryParams())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.GetUsers(ctx.Request().Context(), p)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusOK)
}

func (c *UserController) FindUser(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.GetUser(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusOK)
}

func (c *UserController) UpdateUser(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var d dto.UpdateUserDTO
	fields, err := utils.BindPatch(ctx, &d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	d.Fields = fields
	if err := ctx.Validate(&d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	result, err := c.service.UpdateUser(ctx.Request().Context(), id, d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusOK)
}

func (c *UserController) DeleteUser(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.DeleteUser(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusOK)
}
