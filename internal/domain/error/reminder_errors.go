package error

import "errors"

// Reminder queue domain errors.
var (
	// ErrReminderJobNotFound is returned when a reminder job is not found.
	ErrReminderJobNotFound = errors.New("reminder job not found")

	// ErrReminderMaxAttempts is returned when a job exhausted its delivery attempts.
	ErrReminderMaxAttempts = errors.New("reminder job exceeded max attempts")

	// ErrEmailSenderNotConfigured is returned when no email API key is configured.
	ErrEmailSenderNotConfigured = errors.New("email sender is not configured")
)
