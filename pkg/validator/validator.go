package validator

import (
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(),
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "len":
				errors[field] = field + " must have exactly " + e.Param() + " elements"
			case "max":
				errors[field] = field + " must have at most " + e.Param() + " elements"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}

// Message flattens validation errors into the single message string used by
// the {"error": <message>} failure envelope.
func (cv *CustomValidator) Message(err error) string {
	fields := cv.FormatValidationErrors(err)
	if len(fields) == 0 {
		return err.Error()
	}

	messages := make([]string, 0, len(fields))
	for _, msg := range fields {
		messages = append(messages, msg)
	}
	sort.Strings(messages)

	return strings.Join(messages, "; ")
}
