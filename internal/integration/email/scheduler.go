// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const (
	// scanSpec runs the due-installment scan every morning.
	scanSpec = "0 8 * * *"
	// cleanupSpec runs the sent-job cleanup weekly.
	cleanupSpec = "0 3 * * 0"
)

// Scheduler runs the daily reminder scan and the queue cleanup on a cron.
type Scheduler struct {
	service *Service
	cron    *cron.Cron
}

// NewScheduler creates a scheduler around the reminder service.
func NewScheduler(service *Service) *Scheduler {
	return &Scheduler{
		service: service,
		cron:    cron.New(),
	}
}

// Start registers the cron entries and starts the scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(scanSpec, func() {
		today := time.Now().UTC()
		if _, err := s.service.ScanDueInstallments(ctx, today); err != nil {
			slog.Error("Due-installment scan failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule reminder scan: %w", err)
	}

	if _, err := s.cron.AddFunc(cleanupSpec, func() {
		if _, err := s.service.CleanupSentJobs(ctx); err != nil {
			slog.Error("Reminder cleanup failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule reminder cleanup: %w", err)
	}

	s.cron.Start()
	slog.Info("Reminder scheduler started", "scan", scanSpec, "cleanup", cleanupSpec)
	return nil
}

// Stop stops the scheduler and waits for running entries to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
