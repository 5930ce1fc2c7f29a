// Package validation provides the loot and player forms and validates them
// with validator/v10 before they reach the board.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mesh-intelligence/lootboard/pkg/types"
)

// Validator wraps go-playground/validator with ValidationError conversion.
type Validator struct {
	v *validator.Validate
}

// New creates a validator configured for the board forms.
func New() *Validator {
	v := validator.New()

	// Use JSON tag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// notblank rejects whitespace-only strings, which required accepts.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &Validator{v: v}
}

// Validate validates a form struct. Field failures are returned as a
// *types.ValidationError keyed by the JSON field name; messages come from
// the form's Schema when it declares one for the field.
func (v *Validator) Validate(form any) error {
	err := v.v.Struct(form)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	var schema Schema
	if s, ok := form.(interface{ Schema() Schema }); ok {
		schema = s.Schema()
	}

	fields := make(map[string]string, len(validationErrs))
	for _, e := range validationErrs {
		if _, seen := fields[e.Field()]; seen {
			continue
		}
		if fs, ok := schema[e.Field()]; ok && fs.Message != "" {
			fields[e.Field()] = fs.Message
			continue
		}
		fields[e.Field()] = friendlyMessage(e)
	}
	return &types.ValidationError{Fields: fields}
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", e.Field())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
