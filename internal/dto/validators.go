package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterCustomValidations wires the decimal-aware binding rules into the
// validator instance gin uses. Must be called once during startup, before any
// request binding happens.
func RegisterCustomValidations(v *validator.Validate) error {
	return v.RegisterValidation("positivedecimal", validatePositiveDecimal)
}

// validatePositiveDecimal accepts decimal.Decimal fields that are strictly
// greater than zero. Zero and negative rates must never reach the engine.
func validatePositiveDecimal(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return d.IsPositive()
}
