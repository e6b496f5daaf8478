package validation

import (
	"reflect"
	"regexp"
	"strings"

	"pennywise/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("money_amount", validateMoneyAmount)
	_ = v.RegisterValidation("payment_method", validatePaymentMethod)
	_ = v.RegisterValidation("category_color", validateCategoryColor)
	_ = v.RegisterValidation("month_format", validateMonthFormat)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateMoneyAmount validates that a string amount parses as a positive
// decimal with at most 2 fractional digits
func validateMoneyAmount(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return false
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}

	return amount.IsPositive() && amount.Exponent() >= -2
}

// validatePaymentMethod validates that a payment method is one of the allowed values
func validatePaymentMethod(fl validator.FieldLevel) bool {
	return models.IsValidPaymentMethod(fl.Field().String())
}

// validateCategoryColor validates a 6-digit hex color with a leading hash
func validateCategoryColor(fl validator.FieldLevel) bool {
	color := fl.Field().String()
	if color == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^#[0-9a-fA-F]{6}$`, color)
	return matched
}

// validateMonthFormat validates a YYYY-MM month designator
func validateMonthFormat(fl validator.FieldLevel) bool {
	month := fl.Field().String()
	if month == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^\d{4}-(0[1-9]|1[0-2])$`, month)
	return matched
}
