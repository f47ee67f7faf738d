package utils

import (
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
}

// ValidateEmail reports whether the value is a well-formed email address
func ValidateEmail(email string) bool {
	if Validate == nil {
		InitValidator()
	}
	return Validate.Var(email, "required,email") == nil
}
