// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("cycle_start_day", validateCycleStartDay)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

// Cycle start days are a day of month; short months clamp at computation
// time, so 29-31 are valid here.
func validateCycleStartDay(fl validator.FieldLevel) bool {
	day := fl.Field().Int()
	return day >= 1 && day <= 31
}
