// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("record_category", validateRecordCategory)
		_ = v.RegisterValidation("payment_method", validatePaymentMethod)
	}
}

func validateRecordCategory(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Food", "Rent", "Salary", "Utilities", "Entertainment", "Healthcare", "Other":
		return true
	}
	return false
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Credit Card", "Debit Card", "Cash", "Bank Transfer":
		return true
	}
	return false
}
