package error

import "errors"

// Billing engine domain errors. These are caller contract violations: the
// engine rejects them synchronously before any computation, never clamps.
var (
	// ErrInvalidClosingDay is returned when a closing day is outside 1..31.
	ErrInvalidClosingDay = errors.New("closing day must be between 1 and 31")

	// ErrInvalidDueDay is returned when a due day is outside 1..31.
	ErrInvalidDueDay = errors.New("due day must be between 1 and 31")

	// ErrNonPositiveAmount is returned when a purchase amount is zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be positive")

	// ErrInvalidInstallmentCount is returned when the installment count is below 1.
	ErrInvalidInstallmentCount = errors.New("installment count must be at least 1")

	// ErrInvalidWindow is returned when a timeline window has no months.
	ErrInvalidWindow = errors.New("window must cover at least 1 month")
)

// BillingErrorCode defines error codes for billing engine errors.
// Format: BIL-XXYYYY where XX is category and YYYY is specific error.
type BillingErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidClosingDay       BillingErrorCode = "BIL-010001"
	ErrCodeInvalidDueDay           BillingErrorCode = "BIL-010002"
	ErrCodeNonPositiveAmount       BillingErrorCode = "BIL-010003"
	ErrCodeInvalidInstallmentCount BillingErrorCode = "BIL-010004"
	ErrCodeInvalidWindow           BillingErrorCode = "BIL-010005"
)

// BillingError represents a billing engine error with code and message.
type BillingError struct {
	Code    BillingErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BillingError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BillingError) Unwrap() error {
	return e.Err
}

// NewBillingError creates a new BillingError with the given code and message.
func NewBillingError(code BillingErrorCode, message string, err error) *BillingError {
	return &BillingError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
