package validation

import (
	"reflect"

	"hr-records/internal/dto"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// registerNullTypes учит валидатор "смотреть внутрь" null-типов.
// Невалидное значение превращается в nil, чтобы сработал `omitempty`.
// Идентификаторы отдаются указателем: явный 0 не должен считаться пустым.
func registerNullTypes(v *validator.Validate) {
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(null.String); ok && val.Valid {
			return val.String
		}
		return nil
	}, null.String{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(null.Uint64); ok && val.Valid {
			id := val.Uint64
			return &id
		}
		return nil
	}, null.Uint64{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(null.Bool); ok && val.Valid {
			return val.Bool
		}
		return nil
	}, null.Bool{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(decimal.NullDecimal); ok && val.Valid {
			return val.Decimal
		}
		return nil
	}, decimal.NullDecimal{})

	// Даты: нулевое значение считается отсутствующим, чтобы `required` работал
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(dto.Date); ok && !val.IsZero() {
			return val.Time
		}
		return nil
	}, dto.Date{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(dto.NullDate); ok && val.Valid {
			return val.Date.Time
		}
		return nil
	}, dto.NullDate{})
}
