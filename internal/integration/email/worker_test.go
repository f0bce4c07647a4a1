package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/card-tracker/backend/internal/application/adapter"
	"github.com/card-tracker/backend/internal/domain/entity"
	domainerror "github.com/card-tracker/backend/internal/domain/error"
	"github.com/card-tracker/backend/internal/integration/email/templates"
)

type fakeReminderQueue struct {
	pending []*entity.ReminderJob
	updated []*entity.ReminderJob
}

func (f *fakeReminderQueue) Create(ctx context.Context, job *entity.ReminderJob) error {
	f.pending = append(f.pending, job)
	return nil
}

func (f *fakeReminderQueue) GetPendingJobs(ctx context.Context, limit int) ([]*entity.ReminderJob, error) {
	jobs := make([]*entity.ReminderJob, 0, len(f.pending))
	for _, job := range f.pending {
		if job.Status == entity.ReminderStatusPending {
			jobs = append(jobs, job)
		}
		if len(jobs) == limit {
			break
		}
	}
	return jobs, nil
}

func (f *fakeReminderQueue) Update(ctx context.Context, job *entity.ReminderJob) error {
	f.updated = append(f.updated, job)
	return nil
}

func (f *fakeReminderQueue) GetByID(ctx context.Context, id uuid.UUID) (*entity.ReminderJob, error) {
	for _, job := range f.pending {
		if job.ID == id {
			return job, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeReminderQueue) ExistsForInstallment(ctx context.Context, installmentID uuid.UUID, dueDate time.Time) (bool, error) {
	for _, job := range f.pending {
		if job.InstallmentID == installmentID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReminderQueue) DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error) {
	return 0, nil
}

func newTestWorker(t *testing.T, queue *fakeReminderQueue, sender *MockEmailSender) *Worker {
	t.Helper()

	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	return NewWorker(queue, sender, renderer, WorkerConfig{
		PollInterval: time.Second,
		BatchSize:    10,
	})
}

func newTestJob() *entity.ReminderJob {
	return entity.NewReminderJob(
		uuid.New(),
		uuid.New(),
		"maria@example.com",
		"Maria",
		"Nubank",
		"Notebook",
		decimal.NewFromInt(250),
		time.Now().UTC().AddDate(0, 0, 1),
	)
}

func TestWorkerSendsPendingReminder(t *testing.T) {
	queue := &fakeReminderQueue{pending: []*entity.ReminderJob{newTestJob()}}
	sender := NewMockEmailSender()
	worker := newTestWorker(t, queue, sender)

	worker.ProcessNow(context.Background())

	if len(sender.SentEmails) != 1 {
		t.Fatalf("expected 1 sent email, got %d", len(sender.SentEmails))
	}
	if sender.SentEmails[0].To != "maria@example.com" {
		t.Errorf("unexpected recipient %q", sender.SentEmails[0].To)
	}

	job := queue.pending[0]
	if job.Status != entity.ReminderStatusSent {
		t.Errorf("expected status sent, got %q", job.Status)
	}
	if job.Attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", job.Attempts)
	}
	if job.ProcessedAt == nil {
		t.Error("expected processed_at to be set")
	}
}

func TestWorkerRetriesTemporaryFailure(t *testing.T) {
	queue := &fakeReminderQueue{pending: []*entity.ReminderJob{newTestJob()}}
	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("rate limited"), false)
	worker := newTestWorker(t, queue, sender)

	worker.ProcessNow(context.Background())

	job := queue.pending[0]
	if job.Status != entity.ReminderStatusPending {
		t.Fatalf("expected job back to pending, got %q", job.Status)
	}
	if job.Attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", job.Attempts)
	}
	if job.LastError == "" {
		t.Error("expected last_error to be recorded")
	}

	sender.ClearFailure()
	worker.ProcessNow(context.Background())

	if job.Status != entity.ReminderStatusSent {
		t.Errorf("expected status sent after retry, got %q", job.Status)
	}
}

func TestWorkerFailsPermanentlyWithoutRetry(t *testing.T) {
	queue := &fakeReminderQueue{pending: []*entity.ReminderJob{newTestJob()}}
	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("invalid recipient"), true)
	worker := newTestWorker(t, queue, sender)

	worker.ProcessNow(context.Background())

	job := queue.pending[0]
	if job.Status != entity.ReminderStatusFailed {
		t.Fatalf("expected status failed, got %q", job.Status)
	}
	if job.Attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", job.Attempts)
	}
}

func TestWorkerGivesUpAfterMaxAttempts(t *testing.T) {
	job := newTestJob()
	queue := &fakeReminderQueue{pending: []*entity.ReminderJob{job}}
	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("server error"), false)
	worker := newTestWorker(t, queue, sender)

	for i := 0; i < job.MaxAttempts; i++ {
		worker.ProcessNow(context.Background())
	}

	if job.Status != entity.ReminderStatusFailed {
		t.Fatalf("expected status failed after %d attempts, got %q", job.MaxAttempts, job.Status)
	}
	if job.Attempts != job.MaxAttempts {
		t.Errorf("expected %d attempts, got %d", job.MaxAttempts, job.Attempts)
	}

	worker.ProcessNow(context.Background())
	if job.Attempts != job.MaxAttempts {
		t.Errorf("failed job should not be picked up again, got %d attempts", job.Attempts)
	}
}

func TestResendClientRequiresAPIKey(t *testing.T) {
	client := NewResendClient("", "Card Tracker", "reminders@example.com")

	_, err := client.Send(context.Background(), adapter.SendEmailInput{
		To:      "maria@example.com",
		Subject: "Parcela vence hoje",
		Text:    "test",
	})
	if err == nil {
		t.Fatal("expected error when API key is missing")
	}
	var emailErr *domainerror.EmailError
	if !errors.As(err, &emailErr) || emailErr.Code != domainerror.ErrCodePermanentEmailFailure {
		t.Errorf("expected permanent email failure, got %v", err)
	}
}
