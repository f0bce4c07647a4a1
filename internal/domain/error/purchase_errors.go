package error

import "errors"

// Purchase domain errors.
var (
	// ErrPurchaseNotFound is returned when a purchase is not found.
	ErrPurchaseNotFound = errors.New("purchase not found")

	// ErrPurchaseDescriptionRequired is returned when a purchase description is empty.
	ErrPurchaseDescriptionRequired = errors.New("purchase description is required")

	// ErrPurchaseDateRequired is returned when a purchase date is missing.
	ErrPurchaseDateRequired = errors.New("purchase date is required")

	// ErrTooManyTags is returned when a purchase carries more tags than allowed.
	ErrTooManyTags = errors.New("too many tags")
)

// PurchaseErrorCode defines error codes for purchase errors.
type PurchaseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodePurchaseMissingFields       PurchaseErrorCode = "PUR-010001"
	ErrCodePurchaseInvalidAmount       PurchaseErrorCode = "PUR-010002"
	ErrCodePurchaseInvalidInstallments PurchaseErrorCode = "PUR-010003"
	ErrCodePurchaseTooManyTags         PurchaseErrorCode = "PUR-010004"

	// Lookup errors (02XXXX)
	ErrCodePurchaseNotFound PurchaseErrorCode = "PUR-020001"

	// Internal errors (99XXXX)
	ErrCodePurchaseInternalError PurchaseErrorCode = "PUR-990001"
)

// PurchaseError represents a purchase error with code and message.
type PurchaseError struct {
	Code    PurchaseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PurchaseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PurchaseError) Unwrap() error {
	return e.Err
}

// NewPurchaseError creates a new PurchaseError with the given code and message.
func NewPurchaseError(code PurchaseErrorCode, message string, err error) *PurchaseError {
	return &PurchaseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
