package common

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldError describes a validation failure on a single input field so the
// client UI can attach the message to the matching form control.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateInput runs struct-tag validation on a GraphQL input payload and
// maps every failure to a FieldError keyed by the lowercased struct field
// name, matching the GraphQL input field names.
func ValidateInput(payload interface{}) []FieldError {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "input", Message: err.Error()}}
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, ve := range validationErrors {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   lowerFirst(ve.Field()),
			Message: messageForTag(ve),
		})
	}
	return fieldErrors
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func messageForTag(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Please enter a valid email address."
	case "min":
		return "Value is too short (minimum " + ve.Param() + ")."
	case "max":
		return "Value is too long (maximum " + ve.Param() + ")."
	default:
		return "Invalid value."
	}
}
