package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single failed check on a named field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries the failed checks in declaration order.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	var msgs []string
	for _, fe := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("field '%s': %s", fe.Field, fe.Message))
	}
	return "Validation failed: " + strings.Join(msgs, "; ")
}

// Validator wraps go-playground/validator.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// Report field names from json tags so callers see the wire names,
	// not the Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Validate checks the struct and returns *ValidationError on failure.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	custom := &ValidationError{}
	for _, fe := range validationErrors {
		custom.Errors = append(custom.Errors, FieldError{
			Field:   fe.Field(),
			Message: errorMessage(fe),
		})
	}
	return custom
}

func errorMessage(fe validator.FieldError) string {
	name := friendlyName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "email":
		return "Please include a valid email"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Please enter a %s with %s or more characters",
				strings.ToLower(name), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", name, fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", name)
	default:
		return fmt.Sprintf("%s is invalid (failed on '%s')", name, fe.Tag())
	}
}

func friendlyName(field string) string {
	if field == "" {
		return "Field"
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
