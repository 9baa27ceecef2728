package usecase

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their wire name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validateInput(input interface{}) []ValidationError {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Field: "input", Message: err.Error()}}
	}

	out := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "is invalid"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		return "must have at least " + fe.Param() + " characters"
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "failed " + fe.Tag() + " check"
	}
}

func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	return validateInput(input)
}

func ValidateGetLeadsInput(input GetLeadsInput) []ValidationError {
	errs := validateInput(input)
	if input.CreatedAfter != nil && input.CreatedBefore != nil && input.CreatedBefore.Before(*input.CreatedAfter) {
		errs = append(errs, ValidationError{"created_before", "must not be before created_after"})
	}
	return errs
}

func ValidateCreateContactFormInput(input CreateContactFormInput) []ValidationError {
	return validateInput(input)
}

func ValidateNewsletterEmailInput(input NewsletterEmailInput) []ValidationError {
	return validateInput(input)
}

func ValidateCreateAnalyticsEventInput(input CreateAnalyticsEventInput) []ValidationError {
	return validateInput(input)
}

func ValidateUpdateLeadStatusInput(input UpdateLeadStatusInput) []ValidationError {
	return validateInput(input)
}
