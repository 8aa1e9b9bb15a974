package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator plugs go-playground struct validation into Echo's
// Validator hook so handlers can call c.Validate on bound form DTOs.
type CustomValidator struct {
	v *validator.Validate
}

// New returns a validator ready to register on an Echo instance.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	return &CustomValidator{v: v}
}

// Validate checks the struct's validate tags, including cross-field rules
// such as the summary length bound ordering.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
