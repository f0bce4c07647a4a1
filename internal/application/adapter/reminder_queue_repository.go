// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/card-tracker/backend/internal/domain/entity"
)

// ReminderQueueRepository defines the interface for reminder job persistence.
type ReminderQueueRepository interface {
	// Create adds a new reminder job to the queue.
	Create(ctx context.Context, job *entity.ReminderJob) error

	// GetPendingJobs retrieves jobs ready to be processed, ordered by scheduled_at.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.ReminderJob, error)

	// Update saves changes to a reminder job.
	Update(ctx context.Context, job *entity.ReminderJob) error

	// GetByID retrieves a specific job by its ID.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ReminderJob, error)

	// ExistsForInstallment checks whether a reminder was already queued for
	// the installment and due date, so the daily scan stays idempotent.
	ExistsForInstallment(ctx context.Context, installmentID uuid.UUID, dueDate time.Time) (bool, error)

	// DeleteOldSentJobs removes sent jobs older than the given number of days.
	DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error)
}
