package validator

import (
	"errors"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gt":       "{field} must be greater than {param}",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"email":    "{field} must be a valid email address",
		"notblank": "{field} must not be blank",
	}

	// length rules read better in characters when applied to text.
	textMessages = map[string]string{
		"max": "{field} must be at most {param} characters",
		"min": "{field} must be at least {param} characters",
	}
)

func format(fieldErr val.FieldError) string {
	template := messages[fieldErr.Tag()]

	if fieldErr.Kind() == reflect.String {
		if text, ok := textMessages[fieldErr.Tag()]; ok {
			template = text
		}
	}

	if template == "" {
		return ""
	}

	return strings.NewReplacer("{field}", fieldErr.Field(), "{param}", fieldErr.Param()).Replace(template)
}

// message describes the first failed rule that has a readable template.
func message(err error) string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, fieldErr := range valErrors {
		if msg := format(fieldErr); msg != "" {
			return msg
		}
	}

	return valErrors.Error()
}
