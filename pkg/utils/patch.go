package utils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	apperrors "hr-records/pkg/errors"
	"hr-records/pkg/types"

	"github.com/labstack/echo/v4"
)

// BindPatch разбирает тело запроса в dst и возвращает множество
// реально присланных ключей. Ключ со значением null тоже считается присланным.
func BindPatch(ctx echo.Context, dst interface{}) (types.Fields, error) {
	raw, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "Не удалось прочитать тело запроса", err, nil)
	}
	// Тело могут прочитать повторно (например, логгер)
	ctx.Request().Body = io.NopCloser(bytes.NewReader(raw))

	var sent map[string]json.RawMessage
	if err := json.Unmarshal(raw, &sent); err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "Тело запроса должно быть JSON-объектом", err, nil)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных: "+err.Error(), err, nil)
	}

	fields := make(types.Fields, len(sent))
	for key := range sent {
		fields[key] = struct{}{}
	}
	return fields, nil
}
