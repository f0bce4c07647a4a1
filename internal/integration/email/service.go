// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/card-tracker/backend/internal/application/adapter"
	"github.com/card-tracker/backend/internal/domain/entity"
)

const (
	// sentJobRetentionDays is how long sent reminder jobs are kept before cleanup.
	sentJobRetentionDays = 30
)

// Service scans installments and queues due-date reminder emails.
type Service struct {
	purchases adapter.PurchaseRepository
	queue     adapter.ReminderQueueRepository
}

// NewService creates a new reminder service.
func NewService(purchases adapter.PurchaseRepository, queue adapter.ReminderQueueRepository) *Service {
	return &Service{
		purchases: purchases,
		queue:     queue,
	}
}

// ScanDueInstallments queues one reminder for every installment due on the
// given date whose owner has alerts enabled. The scan is idempotent: an
// installment already queued for the date is skipped, so the job can run
// more than once a day without duplicate emails.
func (s *Service) ScanDueInstallments(ctx context.Context, date time.Time) (int, error) {
	due, err := s.purchases.FindInstallmentsDueOn(ctx, date)
	if err != nil {
		return 0, fmt.Errorf("failed to find installments due: %w", err)
	}

	queued := 0
	for _, installment := range due {
		exists, err := s.queue.ExistsForInstallment(ctx, installment.InstallmentID, installment.DueDate)
		if err != nil {
			return queued, fmt.Errorf("failed to check existing reminder: %w", err)
		}
		if exists {
			continue
		}

		job := entity.NewReminderJob(
			installment.UserID,
			installment.InstallmentID,
			installment.UserEmail,
			installment.UserName,
			installment.CardName,
			fmt.Sprintf("%s (%d/%d)", installment.Description, installment.Number, installment.TotalInstallments),
			installment.Amount,
			installment.DueDate,
		)

		if err := s.queue.Create(ctx, job); err != nil {
			return queued, fmt.Errorf("failed to queue reminder: %w", err)
		}
		queued++
	}

	if queued > 0 {
		slog.Info("Due-date reminders queued", "date", date.Format("2006-01-02"), "count", queued)
	}

	return queued, nil
}

// CleanupSentJobs removes sent reminder jobs past the retention window.
func (s *Service) CleanupSentJobs(ctx context.Context) (int64, error) {
	removed, err := s.queue.DeleteOldSentJobs(ctx, sentJobRetentionDays)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up sent reminders: %w", err)
	}

	if removed > 0 {
		slog.Info("Old sent reminders removed", "count", removed)
	}

	return removed, nil
}
