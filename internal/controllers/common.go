package controllers

import (
	"net/http"
	"strconv"

	apperrors "hr-records/pkg/errors"

	"github.com/labstack/echo/v4"
)

func parseID(ctx echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат ID", err, nil)
	}
	return id, nil
}

// bindAndValidate - Bind + Validate с единым сообщением об ошибке разбора.
func bindAndValidate(ctx echo.Context, dst interface{}) error {
	if err := ctx.Bind(dst); err != nil {
		return apperrors.NewHttpError(http.StatusBadRequest, "Неверные данные", err, nil)
	}
	return ctx.Validate(dst)
}
