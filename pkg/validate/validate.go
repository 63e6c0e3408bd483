package validate

import (
	"github.com/go-playground/validator/v10"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Validator adapts go-playground/validator to Echo's Validator interface.
type Validator struct{}

// Validate implements echo.Validator
func (Validator) Validate(i interface{}) error {
	return v.Struct(i)
}

// Struct validates a struct against its `validate` tags.
func Struct(i interface{}) error {
	return v.Struct(i)
}
