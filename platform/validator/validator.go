// Package validator provides validation infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package validator

import (
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/phone"
)

// Validator wraps the go-playground validator for structured validation.
// Using a struct allows for dependency injection and easier testing.
type Validator struct {
	v *validatorv10.Validate
}

// New creates a new Validator instance with the application's custom rules
// registered. "phone10" accepts any form that parses to a 10-digit mobile
// number, country prefix included.
func New() *Validator {
	v := validatorv10.New()

	// Registration only fails for an empty tag, which is a programmer error.
	_ = v.RegisterValidation("phone10", func(fl validatorv10.FieldLevel) bool {
		return phone.IsValidMobile(fl.Field().String())
	})

	return &Validator{v: v}
}

// Struct validates a struct based on validation tags.
func (val *Validator) Struct(s interface{}) error {
	return val.v.Struct(s)
}

// Var validates a single variable against a tag.
func (val *Validator) Var(field interface{}, tag string) error {
	return val.v.Var(field, tag)
}

// RegisterValidation registers a custom validation function.
func (val *Validator) RegisterValidation(tag string, fn validatorv10.Func) error {
	return val.v.RegisterValidation(tag, fn)
}
