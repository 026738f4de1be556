package controllers

import (
	"fmt"
	"net/http"
	"time"

	"hr-records/internal/dto"
	"hr-records/internal/services"
	apperrors "hr-records/pkg/errors"
	"hr-records/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type EmployeeController struct {
	service services.EmployeeServiceInterface
	logger  *zap.Logger
}

func NewEmployeeController(service services.EmployeeServiceInterface, logger *zap.Logger) *EmployeeController {
	return &EmployeeController{service: service, logger: logger}
}

func (c *EmployeeController) CreateEmployee(ctx echo.Context) error {
	var d dto.CreateEmployeeDTO
	if err := bindAndValidate(ctx, &d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.CreateEmployee(ctx.Request().Context(), d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusCreated)
}

func (c *EmployeeController) GetEmployees(ctx echo.Context) error {
	p, err := utils.ParsePagination(ctx.QueryParams())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.GetEmployees(ctx.Request().Context(), p)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusOK)
}

func (c *EmployeeController) FindEmployee(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.GetEmployee(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusOK)
}

func (c *EmployeeController) FindEmployeeByCode(ctx echo.Context) error {
	result, err := c.service.GetEmployeeByCode(ctx.Request().Context(), ctx.Param("code"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusOK)
}

func (c *EmployeeController) SearchEmployees(ctx echo.Context) error {
	// Фрагмент ищется как есть: пробелы значимы, пустая строка совпадает со всеми
	if !ctx.QueryParams().Has("last_name") {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("параметр last_name обязателен"), c.logger)
	}
	lastName := ctx.QueryParam("last_name")
	result, err := c.service.SearchEmployees(ctx.Request().Context(), lastName)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusOK)
}

func (c *EmployeeController) UpdateEmployee(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var d dto.UpdateEmployeeDTO
	fields, err := utils.BindPatch(ctx, &d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	d.Fields = fields
	if err := ctx.Validate(&d); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	result, err := c.service.UpdateEmployee(ctx.Request().Context(), id, d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusOK)
}

func (c *EmployeeController) DeleteEmployee(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.DeleteEmployee(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, http.StatusOK)
}

// ExportEmployees отдает страницу сотрудников в виде xlsx.
func (c *EmployeeController) ExportEmployees(ctx echo.Context) error {
	p, err := utils.ParsePagination(ctx.QueryParams())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	employees, err := c.service.GetEmployees(ctx.Request().Context(), p)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	f, err := buildEmployeesWorkbook(employees)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	defer f.Close()

	fileName := fmt.Sprintf("employees_%s.xlsx", time.Now().Format(dto.DateLayout))
	ctx.Response().Header().Set(echo.HeaderContentType, xlsxContentType)
	ctx.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
