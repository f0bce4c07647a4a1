package error

import "errors"

// Income domain errors.
var (
	// ErrIncomeNotFound is returned when an income entry is not found.
	ErrIncomeNotFound = errors.New("income not found")

	// ErrIncomeLabelRequired is returned when an income label is empty.
	ErrIncomeLabelRequired = errors.New("income label is required")

	// ErrInvalidIncomeAmount is returned when an income amount is zero or negative.
	ErrInvalidIncomeAmount = errors.New("income amount must be positive")

	// ErrInvalidIncomeMonth is returned when the month/year reference is invalid.
	ErrInvalidIncomeMonth = errors.New("income month must be between 1 and 12")
)

// IncomeErrorCode defines error codes for income errors.
type IncomeErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeIncomeLabelRequired IncomeErrorCode = "INC-010001"
	ErrCodeIncomeInvalidAmount IncomeErrorCode = "INC-010002"
	ErrCodeIncomeInvalidMonth  IncomeErrorCode = "INC-010003"

	// Lookup errors (02XXXX)
	ErrCodeIncomeNotFound IncomeErrorCode = "INC-020001"
)

// IncomeError represents an income error with code and message.
type IncomeError struct {
	Code    IncomeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *IncomeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *IncomeError) Unwrap() error {
	return e.Err
}

// NewIncomeError creates a new IncomeError with the given code and message.
func NewIncomeError(code IncomeErrorCode, message string, err error) *IncomeError {
	return &IncomeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
