// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/card-tracker/backend/internal/domain/entity"
)

// ReminderJobModel represents the reminder_jobs table in the database.
type ReminderJobModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	InstallmentID  uuid.UUID       `gorm:"type:uuid;not null;index:idx_reminder_installment_due,unique"`
	DueDate        time.Time       `gorm:"type:date;not null;index:idx_reminder_installment_due,unique"`
	RecipientEmail string          `gorm:"type:varchar(255);not null"`
	RecipientName  string          `gorm:"type:varchar(100)"`
	CardName       string          `gorm:"type:varchar(100)"`
	Description    string          `gorm:"type:varchar(255)"`
	Amount         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status         string          `gorm:"type:varchar(20);not null;index"`
	Attempts       int             `gorm:"default:0"`
	MaxAttempts    int             `gorm:"default:3"`
	LastError      string          `gorm:"type:text"`
	CreatedAt      time.Time       `gorm:"not null"`
	ProcessedAt    *time.Time      `gorm:"type:timestamptz"`
}

// TableName returns the table name for the ReminderJobModel.
func (ReminderJobModel) TableName() string {
	return "reminder_jobs"
}

// ToEntity converts a ReminderJobModel to a domain ReminderJob entity.
func (m *ReminderJobModel) ToEntity() *entity.ReminderJob {
	return &entity.ReminderJob{
		ID:             m.ID,
		UserID:         m.UserID,
		InstallmentID:  m.InstallmentID,
		RecipientEmail: m.RecipientEmail,
		RecipientName:  m.RecipientName,
		CardName:       m.CardName,
		Description:    m.Description,
		Amount:         m.Amount,
		DueDate:        m.DueDate,
		Status:         entity.ReminderStatus(m.Status),
		Attempts:       m.Attempts,
		MaxAttempts:    m.MaxAttempts,
		LastError:      m.LastError,
		CreatedAt:      m.CreatedAt,
		ProcessedAt:    m.ProcessedAt,
	}
}

// ReminderJobFromEntity creates a ReminderJobModel from a domain ReminderJob entity.
func ReminderJobFromEntity(job *entity.ReminderJob) *ReminderJobModel {
	return &ReminderJobModel{
		ID:             job.ID,
		UserID:         job.UserID,
		InstallmentID:  job.InstallmentID,
		DueDate:        job.DueDate,
		RecipientEmail: job.RecipientEmail,
		RecipientName:  job.RecipientName,
		CardName:       job.CardName,
		Description:    job.Description,
		Amount:         job.Amount,
		Status:         string(job.Status),
		Attempts:       job.Attempts,
		MaxAttempts:    job.MaxAttempts,
		LastError:      job.LastError,
		CreatedAt:      job.CreatedAt,
		ProcessedAt:    job.ProcessedAt,
	}
}
