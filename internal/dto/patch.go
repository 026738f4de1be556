package dto

import (
	"sort"
	"strings"

	apperrors "hr-records/pkg/errors"
	"hr-records/pkg/types"
)

// rejectNulls проверяет, что обязательные поля не присланы как null или пустая строка.
func rejectNulls(fields types.Fields, valid map[string]bool) error {
	var bad []string
	for key, ok := range valid {
		if fields.Has(key) && !ok {
			bad = append(bad, key)
		}
	}
	if len(bad) == 0 {
		return nil
	}
	sort.Strings(bad)
	return apperrors.NewInvalidInputError("поля не могут быть пустыми или null: %s", strings.Join(bad, ", "))
}
