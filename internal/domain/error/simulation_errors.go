package error

import (
	"errors"
	"time"
)

// Simulation domain errors. Advisor failures are not part of this taxonomy:
// they are recovered locally via the deterministic fallback and never
// propagated as simulation failures.
var (
	// ErrSimulationQuotaExceeded is returned when the per-user simulation quota is spent.
	ErrSimulationQuotaExceeded = errors.New("simulation quota exceeded")

	// ErrSimulationCardRequired is returned when the user has no card to simulate against.
	ErrSimulationCardRequired = errors.New("at least one card is required for simulation")
)

// SimulationErrorCode defines error codes for simulation errors.
type SimulationErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeSimulationInvalidInput SimulationErrorCode = "SIM-010001"
	ErrCodeSimulationCardRequired SimulationErrorCode = "SIM-010002"

	// Quota errors (02XXXX)
	ErrCodeSimulationQuotaExceeded SimulationErrorCode = "SIM-020001"

	// Internal errors (99XXXX)
	ErrCodeSimulationInternalError SimulationErrorCode = "SIM-990001"
)

// SimulationError represents a simulation error with code and message.
// ResetsAt is only populated for quota errors.
type SimulationError struct {
	Code     SimulationErrorCode
	Message  string
	Err      error
	ResetsAt time.Time
}

// Error implements the error interface.
func (e *SimulationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SimulationError) Unwrap() error {
	return e.Err
}

// NewSimulationError creates a new SimulationError with the given code and message.
func NewSimulationError(code SimulationErrorCode, message string, err error) *SimulationError {
	return &SimulationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
