package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "hr-records/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SuccessResponse отдает тело как есть, без обертки.
func SuccessResponse(ctx echo.Context, body interface{}, code int) error {
	return ctx.JSON(code, body)
}

func errorBody(message string) map[string]interface{} {
	return map[string]interface{}{
		"status":  false,
		"message": message,
	}
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil && httpErr.Code >= http.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
			)
		}
		response := errorBody(httpErr.Message)
		if httpErr.Details != nil {
			response["body"] = httpErr.Details
		}
		return c.JSON(httpErr.Code, response)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("Поле '%s' не прошло проверку '%s'", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, errorBody("Ошибка валидации: "+strings.Join(msgs, "; ")))
	}

	var inputErr *apperrors.InvalidInputError
	if errors.As(err, &inputErr) {
		return c.JSON(http.StatusBadRequest, errorBody(inputErr.Message))
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		return c.JSON(echoErr.Code, errorBody(fmt.Sprint(echoErr.Message)))
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorBody(err.Error()))
	case errors.Is(err, apperrors.ErrConflict):
		return c.JSON(http.StatusConflict, errorBody(err.Error()))
	case errors.Is(err, apperrors.ErrInvalidReference), errors.Is(err, apperrors.ErrBadRequest):
		return c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	case errors.Is(err, apperrors.ErrNoSession):
		return c.JSON(http.StatusServiceUnavailable, errorBody(err.Error()))
	}

	logger.Error("Unexpected Error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, errorBody("Внутренняя ошибка сервера"))
}
