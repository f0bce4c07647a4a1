package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReminderStatus represents the status of a due-date reminder in the queue.
type ReminderStatus string

const (
	ReminderStatusPending    ReminderStatus = "pending"
	ReminderStatusProcessing ReminderStatus = "processing"
	ReminderStatusSent       ReminderStatus = "sent"
	ReminderStatusFailed     ReminderStatus = "failed"
)

// DueInstallment is a reminder-scan row: an installment joined with its
// purchase, card and owning user.
type DueInstallment struct {
	InstallmentID     uuid.UUID
	UserID            uuid.UUID
	UserEmail         string
	UserName          string
	CardName          string
	Description       string
	Amount            decimal.Decimal
	Number            int
	TotalInstallments int
	DueDate           time.Time
}

// ReminderJob is a queued due-date reminder email for one installment.
type ReminderJob struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	InstallmentID  uuid.UUID
	RecipientEmail string
	RecipientName  string
	CardName       string
	Description    string
	Amount         decimal.Decimal
	DueDate        time.Time
	Status         ReminderStatus
	Attempts       int
	MaxAttempts    int
	LastError      string
	CreatedAt      time.Time
	ProcessedAt    *time.Time
}

// NewReminderJob creates a pending reminder job for an installment.
func NewReminderJob(
	userID uuid.UUID,
	installmentID uuid.UUID,
	recipientEmail string,
	recipientName string,
	cardName string,
	description string,
	amount decimal.Decimal,
	dueDate time.Time,
) *ReminderJob {
	return &ReminderJob{
		ID:             uuid.New(),
		UserID:         userID,
		InstallmentID:  installmentID,
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		CardName:       cardName,
		Description:    description,
		Amount:         amount,
		DueDate:        dueDate,
		Status:         ReminderStatusPending,
		MaxAttempts:    3,
		CreatedAt:      time.Now().UTC(),
	}
}

// MarkProcessing transitions the job to processing and counts the attempt.
func (j *ReminderJob) MarkProcessing() {
	j.Status = ReminderStatusProcessing
	j.Attempts++
}

// MarkSent transitions the job to sent.
func (j *ReminderJob) MarkSent() {
	now := time.Now().UTC()
	j.Status = ReminderStatusSent
	j.ProcessedAt = &now
	j.LastError = ""
}

// MarkFailed records the failure. The job goes back to pending for a retry
// unless the attempts budget is spent or the failure is permanent.
func (j *ReminderJob) MarkFailed(err error, permanent bool) {
	j.LastError = err.Error()

	if permanent || j.Attempts >= j.MaxAttempts {
		now := time.Now().UTC()
		j.Status = ReminderStatusFailed
		j.ProcessedAt = &now
		return
	}

	j.Status = ReminderStatusPending
}
