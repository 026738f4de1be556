package utils

import (
	"net/url"
	"strconv"

	apperrors "hr-records/pkg/errors"
	"hr-records/pkg/types"
)

// ParsePagination читает skip и limit из query. Отсутствующие параметры
// получают значения по умолчанию, некорректные - ошибку 400.
func ParsePagination(values url.Values) (types.Pagination, error) {
	p := types.DefaultPagination()

	if skipStr := values.Get("skip"); skipStr != "" {
		s, err := parseNonNegative(skipStr)
		if err != nil {
			return p, apperrors.NewInvalidInputError("параметр skip должен быть неотрицательным целым, получено %q", skipStr)
		}
		p.Skip = s
	}

	if limitStr := values.Get("limit"); limitStr != "" {
		l, err := parseNonNegative(limitStr)
		if err != nil {
			return p, apperrors.NewInvalidInputError("параметр limit должен быть неотрицательным целым, получено %q", limitStr)
		}
		p.Limit = l
	}

	return p, nil
}

// parseNonNegative ограничивает значение диапазоном BIGINT: больше в OFFSET/LIMIT не передать.
func parseNonNegative(s string) (uint64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, strconv.ErrRange
	}
	return uint64(n), nil
}
