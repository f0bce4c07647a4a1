package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestProjectReleaseAgainstCurrentBaseline(t *testing.T) {
	now := date(2025, time.March, 10)
	existing := []ScheduledInstallment{
		scheduled(uuid.New(), "300.00", date(2025, time.March, 17)),
		scheduled(uuid.New(), "200.00", date(2025, time.April, 17)),
		scheduled(uuid.New(), "50.00", date(2025, time.May, 17)),
	}

	projection := ProjectRelease(existing, now, 4)
	if len(projection) != 4 {
		t.Fatalf("expected 4 months, got %d", len(projection))
	}

	tests := []struct {
		label         string
		wantCommitted string
		wantReleased  string
	}{
		{"Mar 2025", "300.00", "0.00"},
		{"Abr 2025", "200.00", "100.00"},
		{"Mai 2025", "50.00", "250.00"},
		{"Jun 2025", "0.00", "300.00"},
	}
	for i, tt := range tests {
		got := projection[i]
		if got.Label != tt.label {
			t.Errorf("month %d label = %q, want %q", i, got.Label, tt.label)
		}
		if got.CommittedAmount.StringFixed(2) != tt.wantCommitted {
			t.Errorf("%s committed = %s, want %s", tt.label, got.CommittedAmount.StringFixed(2), tt.wantCommitted)
		}
		if got.ReleasedAmount.StringFixed(2) != tt.wantReleased {
			t.Errorf("%s released = %s, want %s", tt.label, got.ReleasedAmount.StringFixed(2), tt.wantReleased)
		}
	}
}

func TestProjectReleaseFloorsNegativeReleaseAtZero(t *testing.T) {
	now := date(2025, time.March, 10)
	existing := []ScheduledInstallment{
		scheduled(uuid.New(), "100.00", date(2025, time.March, 17)),
		scheduled(uuid.New(), "400.00", date(2025, time.April, 17)),
	}

	projection := ProjectRelease(existing, now, 2)
	if got := projection[1].ReleasedAmount.StringFixed(2); got != "0.00" {
		t.Errorf("month heavier than baseline released = %s, want 0.00", got)
	}
	if got := projection[1].CommittedAmount.StringFixed(2); got != "400.00" {
		t.Errorf("heavier month committed = %s, want 400.00", got)
	}
}

func TestProjectReleaseWithNoCommitments(t *testing.T) {
	projection := ProjectRelease(nil, date(2025, time.March, 10), 3)
	for _, month := range projection {
		if !month.CommittedAmount.IsZero() || !month.ReleasedAmount.IsZero() {
			t.Errorf("%s: expected zero committed and released, got %s / %s",
				month.Label, month.CommittedAmount, month.ReleasedAmount)
		}
	}
}

func TestProjectReleaseInvalidHorizon(t *testing.T) {
	if got := ProjectRelease(nil, date(2025, time.March, 10), 0); got != nil {
		t.Errorf("expected nil projection for zero horizon, got %v", got)
	}
}
