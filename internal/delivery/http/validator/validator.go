// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type structValidator struct {
	validate *validatorv10.Validate
}

// New creates the request validator used by the Echo server
func New() echo.Validator {
	return &structValidator{
		validate: validatorv10.New(),
	}
}

// Validate implements echo.Validator
func (v *structValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
