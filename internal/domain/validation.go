package domain

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

type Validation struct {
	validator *validator.Validate
}

func NewValidation() *Validation {
	v := validator.New()
	v.RegisterValidation("prodname", validateProductName)
	v.RegisterValidation("unit", validateUnit)
	return &Validation{validator: v}
}

var productNameRegex = regexp.MustCompile(`^[a-zA-ZñÑáéíóúÁÉÍÓÚ\s]+$`)

func validateProductName(fl validator.FieldLevel) bool {
	return productNameRegex.MatchString(fl.Field().String())
}

func validateUnit(fl validator.FieldLevel) bool {
	unit := fl.Field().String()
	for _, u := range Units {
		if u == unit {
			return true
		}
	}
	return false
}

// ValidationError wraps the validator's FieldError
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (v ValidationError) Error() string {
	return fmt.Sprintf("Field '%s': %s", v.Field, v.Message)
}

// ValidationErrors is a slice of ValidationError
type ValidationErrors []ValidationError

func (v *Validation) Validate(i interface{}) ValidationErrors {
	return wrapFieldErrors(v.validator.Struct(i))
}

// ValidateExcept validates i skipping the named struct fields. The form uses
// it in edit mode, where the code field is locked and must not be validated
// against user edits.
func (v *Validation) ValidateExcept(i interface{}, fields ...string) ValidationErrors {
	return wrapFieldErrors(v.validator.StructExcept(i, fields...))
}

func wrapFieldErrors(err error) ValidationErrors {
	var errors ValidationErrors

	if err != nil {
		validationErrors := err.(validator.ValidationErrors)
		for _, ve := range validationErrors {
			errors = append(errors, ValidationError{
				Field:   ve.Field(),
				Message: fmt.Sprintf("failed on the '%s' tag", ve.Tag()),
			})
		}
	}

	return errors
}
