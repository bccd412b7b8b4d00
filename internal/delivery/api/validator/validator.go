// Package validator adapts go-playground/validator to echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"bloodlink/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// RequestValidator implements echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a validator with the domain tags registered:
// blood_type accepts the eight ABO/Rh codes and urgency the four urgency levels.
func New() *RequestValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names in messages.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	_ = validate.RegisterValidation("blood_type", func(fl validator.FieldLevel) bool {
		_, ok := entity.ParseBloodType(fl.Field().String())

		return ok
	})
	_ = validate.RegisterValidation("urgency", func(fl validator.FieldLevel) bool {
		_, ok := entity.ParseUrgency(fl.Field().String())

		return ok
	})

	return &RequestValidator{validate: validate}
}

// Validate checks i against its validate tags and returns a readable error listing each failed field.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		messages = append(messages, describe(fieldErr))
	}

	return errors.New(strings.Join(messages, "; "))
}

func describe(fieldErr validator.FieldError) string {
	field := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required":
		return field + " is required"
	case "blood_type":
		return fmt.Sprintf("%s must be one of A+, A-, B+, B-, AB+, AB-, O+, O-", field)
	case "urgency":
		return fmt.Sprintf("%s must be one of Critical, High, Medium, Low", field)
	case "gt", "gte", "lt", "lte", "min", "max":
		return fmt.Sprintf("%s must satisfy %s=%s", field, fieldErr.Tag(), fieldErr.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fieldErr.Tag())
	}
}
