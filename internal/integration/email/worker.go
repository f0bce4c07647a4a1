// Package email provides email sending functionality.
package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/card-tracker/backend/internal/application/adapter"
	"github.com/card-tracker/backend/internal/domain/entity"
	domainerror "github.com/card-tracker/backend/internal/domain/error"
	"github.com/card-tracker/backend/internal/integration/email/templates"
)

// dueReminderTemplate is the template name for due-date reminder emails.
const dueReminderTemplate = "due_reminder"

// Worker processes the reminder queue and sends emails.
type Worker struct {
	queue        adapter.ReminderQueueRepository
	sender       adapter.EmailSender
	renderer     *templates.Renderer
	pollInterval time.Duration
	batchSize    int
}

// WorkerConfig holds configuration for the reminder worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 5 * time.Second,
		BatchSize:    10,
	}
}

// NewWorker creates a new reminder worker.
func NewWorker(queue adapter.ReminderQueueRepository, sender adapter.EmailSender, renderer *templates.Renderer, config WorkerConfig) *Worker {
	return &Worker{
		queue:        queue,
		sender:       sender,
		renderer:     renderer,
		pollInterval: config.PollInterval,
		batchSize:    config.BatchSize,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Reminder worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Process immediately on start, then on ticker
	w.processBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Reminder worker shutting down")
			return
		case <-ticker.C:
			w.processBatch(ctx)
		}
	}
}

// processBatch fetches and processes a batch of pending reminders.
func (w *Worker) processBatch(ctx context.Context) {
	jobs, err := w.queue.GetPendingJobs(ctx, w.batchSize)
	if err != nil {
		slog.Error("Failed to get pending reminder jobs", "error", err)
		return
	}

	if len(jobs) == 0 {
		return
	}

	slog.Debug("Processing reminder batch", "count", len(jobs))

	for _, job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
			w.processJob(ctx, job)
		}
	}
}

// processJob processes a single reminder job.
func (w *Worker) processJob(ctx context.Context, job *entity.ReminderJob) {
	logger := slog.With(
		"job_id", job.ID,
		"recipient", job.RecipientEmail,
	)

	// Mark as processing
	job.MarkProcessing()
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as processing", "error", err)
		return
	}

	// Render template
	html, text, err := w.renderer.Render(dueReminderTemplate, templates.DueReminderData{
		UserName:     job.RecipientName,
		CardName:     job.CardName,
		Description:  job.Description,
		Amount:       job.Amount.StringFixed(2),
		DueDateLabel: job.DueDate.Format("02/01/2006"),
	})
	if err != nil {
		logger.Error("Failed to render reminder template", "error", err)
		w.handleFailure(ctx, job, err, true) // Template errors are permanent
		return
	}

	// Send email
	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      job.RecipientEmail,
		Name:    job.RecipientName,
		Subject: fmt.Sprintf("Parcela vence hoje no cartao %s", job.CardName),
		HTML:    html,
		Text:    text,
	})

	if err != nil {
		logger.Error("Failed to send reminder email", "error", err)

		// Check if it's a permanent error
		var emailErr *domainerror.EmailError
		isPermanent := errors.As(err, &emailErr) && emailErr.Code == domainerror.ErrCodePermanentEmailFailure

		w.handleFailure(ctx, job, err, isPermanent)
		return
	}

	// Mark as sent
	job.MarkSent()
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as sent", "error", err)
		return
	}

	logger.Info("Reminder email sent", "provider_id", result.ProviderID)
}

// handleFailure handles a failed reminder job.
func (w *Worker) handleFailure(ctx context.Context, job *entity.ReminderJob, err error, permanent bool) {
	job.MarkFailed(err, permanent)

	if updateErr := w.queue.Update(ctx, job); updateErr != nil {
		slog.Error("Failed to update job after failure",
			"job_id", job.ID,
			"error", updateErr,
		)
	}

	if job.Status == entity.ReminderStatusFailed {
		reason := job.LastError
		if !permanent && job.Attempts >= job.MaxAttempts {
			reason = domainerror.ErrReminderMaxAttempts.Error()
		}
		slog.Warn("Reminder job permanently failed",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"last_error", reason,
		)
	} else {
		slog.Info("Reminder job scheduled for retry",
			"job_id", job.ID,
			"attempts", job.Attempts,
		)
	}
}

// ProcessNow processes all pending reminders immediately (useful for testing).
func (w *Worker) ProcessNow(ctx context.Context) {
	w.processBatch(ctx)
}
