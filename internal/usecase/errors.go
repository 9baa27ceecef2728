package usecase

import "errors"

const (
	CodeValidation           = "VALIDATION_ERROR"
	CodeLeadNotFound         = "LEAD_NOT_FOUND"
	CodeSubscriptionNotFound = "SUBSCRIPTION_NOT_FOUND"
)

// DomainError is a business-rule rejection the caller can act on.
type DomainError struct {
	Code    string
	Message string
	Fields  []ValidationError
	Err     error
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func IsDomainError(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr)
}

func newValidationError(fields []ValidationError) *DomainError {
	msg := "validation failed: "
	for i, f := range fields {
		if i > 0 {
			msg += ", "
		}
		msg += f.Field + " (" + f.Message + ")"
	}
	return &DomainError{
		Code:    CodeValidation,
		Message: msg,
		Fields:  fields,
	}
}
