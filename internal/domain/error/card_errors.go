package error

import "errors"

// Card domain errors.
var (
	// ErrCardNotFound is returned when a card is not found.
	ErrCardNotFound = errors.New("card not found")

	// ErrCardNameRequired is returned when a card name is empty.
	ErrCardNameRequired = errors.New("card name is required")

	// ErrInvalidCreditLimit is returned when a credit limit is zero or negative.
	ErrInvalidCreditLimit = errors.New("credit limit must be positive")

	// ErrInvalidMonthlyBudget is returned when a monthly budget is negative.
	ErrInvalidMonthlyBudget = errors.New("monthly budget must not be negative")

	// ErrCardHasPurchases is returned when deleting a card that still has purchases.
	ErrCardHasPurchases = errors.New("card still has purchases")
)

// CardErrorCode defines error codes for card errors.
type CardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCardNameRequired  CardErrorCode = "CRD-010001"
	ErrCodeCardInvalidLimit  CardErrorCode = "CRD-010002"
	ErrCodeCardInvalidBudget CardErrorCode = "CRD-010003"
	ErrCodeCardInvalidDays   CardErrorCode = "CRD-010004"
	ErrCodeCardMissingFields CardErrorCode = "CRD-010005"

	// Lookup errors (02XXXX)
	ErrCodeCardNotFound CardErrorCode = "CRD-020001"

	// Deletion errors (03XXXX)
	ErrCodeCardHasPurchases CardErrorCode = "CRD-030001"
)

// CardError represents a card error with code and message.
type CardError struct {
	Code    CardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CardError) Unwrap() error {
	return e.Err
}

// NewCardError creates a new CardError with the given code and message.
func NewCardError(code CardErrorCode, message string, err error) *CardError {
	return &CardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
