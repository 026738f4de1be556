package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	// NUMERIC(10,2): не больше 8 знаков до запятой
	maxMoney = decimal.New(1, 8)
)

// registerRules регистрирует теги, которые мы используем в struct tags
func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("custom_email", isGoodEmailFormat); err != nil {
		return err
	}
	if err := v.RegisterValidation("money", isMoney); err != nil {
		return err
	}
	return nil
}

// isGoodEmailFormat - проверка email
func isGoodEmailFormat(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

// isMoney - неотрицательная сумма, помещающаяся в NUMERIC(10,2), не больше двух знаков после запятой
func isMoney(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	if d.IsNegative() || d.GreaterThanOrEqual(maxMoney) {
		return false
	}
	return d.Equal(d.Truncate(2))
}
