package error

import "errors"

// Email delivery domain errors.
var (
	// ErrEmailPermanentFailure is returned when the provider rejected the email for good.
	ErrEmailPermanentFailure = errors.New("permanent email failure")

	// ErrEmailTemporaryFailure is returned when the provider failed but a retry may succeed.
	ErrEmailTemporaryFailure = errors.New("temporary email failure")
)

// EmailErrorCode defines error codes for email delivery errors.
type EmailErrorCode string

const (
	// Delivery errors (01XXXX)
	ErrCodePermanentEmailFailure EmailErrorCode = "EML-010001"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EML-010002"
)

// EmailError represents an email delivery error with code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
