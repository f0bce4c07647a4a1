// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/card-tracker/backend/internal/application/adapter"
	"github.com/card-tracker/backend/internal/domain/entity"
	domainerror "github.com/card-tracker/backend/internal/domain/error"
	"github.com/card-tracker/backend/internal/integration/persistence/model"
)

// reminderQueueRepository implements the adapter.ReminderQueueRepository interface.
type reminderQueueRepository struct {
	db *gorm.DB
}

// NewReminderQueueRepository creates a new reminder queue repository instance.
func NewReminderQueueRepository(db *gorm.DB) adapter.ReminderQueueRepository {
	return &reminderQueueRepository{
		db: db,
	}
}

// Create adds a new reminder job to the queue.
func (r *reminderQueueRepository) Create(ctx context.Context, job *entity.ReminderJob) error {
	jobModel := model.ReminderJobFromEntity(job)
	return r.db.WithContext(ctx).Create(jobModel).Error
}

// GetPendingJobs retrieves jobs ready to be processed, oldest first.
func (r *reminderQueueRepository) GetPendingJobs(ctx context.Context, limit int) ([]*entity.ReminderJob, error) {
	var jobModels []model.ReminderJobModel
	result := r.db.WithContext(ctx).
		Where("status = ?", string(entity.ReminderStatusPending)).
		Order("created_at ASC").
		Limit(limit).
		Find(&jobModels)
	if result.Error != nil {
		return nil, result.Error
	}

	jobs := make([]*entity.ReminderJob, 0, len(jobModels))
	for i := range jobModels {
		jobs = append(jobs, jobModels[i].ToEntity())
	}
	return jobs, nil
}

// Update saves changes to a reminder job.
func (r *reminderQueueRepository) Update(ctx context.Context, job *entity.ReminderJob) error {
	jobModel := model.ReminderJobFromEntity(job)
	return r.db.WithContext(ctx).Save(jobModel).Error
}

// GetByID retrieves a specific job by its ID.
func (r *reminderQueueRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ReminderJob, error) {
	var jobModel model.ReminderJobModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&jobModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrReminderJobNotFound
		}
		return nil, result.Error
	}
	return jobModel.ToEntity(), nil
}

// ExistsForInstallment checks whether a reminder was already queued for the
// installment and due date.
func (r *reminderQueueRepository) ExistsForInstallment(ctx context.Context, installmentID uuid.UUID, dueDate time.Time) (bool, error) {
	day := time.Date(dueDate.Year(), dueDate.Month(), dueDate.Day(), 0, 0, 0, 0, time.UTC)

	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ReminderJobModel{}).
		Where("installment_id = ? AND due_date = ?", installmentID, day).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// DeleteOldSentJobs removes sent jobs older than the given number of days.
func (r *reminderQueueRepository) DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -olderThanDays)

	result := r.db.WithContext(ctx).
		Where("status = ? AND processed_at < ?", string(entity.ReminderStatusSent), cutoff).
		Delete(&model.ReminderJobModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
