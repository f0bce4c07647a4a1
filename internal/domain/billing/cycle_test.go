package billing

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/card-tracker/backend/internal/domain/error"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestResolveFirstDueDate(t *testing.T) {
	tests := []struct {
		name         string
		purchaseDate time.Time
		closingDay   int
		dueDay       int
		want         time.Time
	}{
		{
			name:         "before closing day stays in current cycle",
			purchaseDate: date(2024, time.January, 5),
			closingDay:   10,
			dueDay:       17,
			want:         date(2024, time.January, 17),
		},
		{
			name:         "after closing day shifts to next cycle",
			purchaseDate: date(2024, time.January, 15),
			closingDay:   10,
			dueDay:       17,
			want:         date(2024, time.February, 17),
		},
		{
			name:         "due day before closing day pays next month",
			purchaseDate: date(2024, time.January, 20),
			closingDay:   25,
			dueDay:       5,
			want:         date(2024, time.February, 5),
		},
		{
			name:         "after closing with early due day skips two months",
			purchaseDate: date(2024, time.January, 28),
			closingDay:   25,
			dueDay:       5,
			want:         date(2024, time.March, 5),
		},
		{
			name:         "purchase on the closing day itself stays in current cycle",
			purchaseDate: date(2024, time.March, 10),
			closingDay:   10,
			dueDay:       17,
			want:         date(2024, time.March, 17),
		},
		{
			name:         "purchase one day after closing shifts cycle",
			purchaseDate: date(2024, time.March, 11),
			closingDay:   10,
			dueDay:       17,
			want:         date(2024, time.April, 17),
		},
		{
			name:         "due day equal to closing day stays in cycle month",
			purchaseDate: date(2024, time.March, 10),
			closingDay:   15,
			dueDay:       15,
			want:         date(2024, time.March, 15),
		},
		{
			name:         "december cycle rolls into january of next year",
			purchaseDate: date(2024, time.December, 20),
			closingDay:   25,
			dueDay:       5,
			want:         date(2025, time.January, 5),
		},
		{
			name:         "purchase after december closing lands in february",
			purchaseDate: date(2024, time.December, 28),
			closingDay:   25,
			dueDay:       5,
			want:         date(2025, time.February, 5),
		},
		{
			name:         "due day 31 clamps to end of april",
			purchaseDate: date(2024, time.April, 5),
			closingDay:   10,
			dueDay:       31,
			want:         date(2024, time.April, 30),
		},
		{
			name:         "due day 31 clamps to leap february",
			purchaseDate: date(2024, time.February, 5),
			closingDay:   10,
			dueDay:       31,
			want:         date(2024, time.February, 29),
		},
		{
			name:         "closing day 31 closes on last day of february",
			purchaseDate: date(2024, time.February, 29),
			closingDay:   31,
			dueDay:       10,
			want:         date(2024, time.March, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveFirstDueDate(tt.purchaseDate, tt.closingDay, tt.dueDay)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ResolveFirstDueDate(%s, %d, %d) = %s, want %s",
					tt.purchaseDate.Format("2006-01-02"), tt.closingDay, tt.dueDay,
					got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
			}
		})
	}
}

func TestResolveFirstDueDateRejectsInvalidDays(t *testing.T) {
	tests := []struct {
		name       string
		closingDay int
		dueDay     int
		want       error
	}{
		{"closing day zero", 0, 10, domainerror.ErrInvalidClosingDay},
		{"closing day too large", 32, 10, domainerror.ErrInvalidClosingDay},
		{"due day zero", 10, 0, domainerror.ErrInvalidDueDay},
		{"due day too large", 10, 32, domainerror.ErrInvalidDueDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveFirstDueDate(date(2024, time.June, 15), tt.closingDay, tt.dueDay)
			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected error %v, got %v", tt.want, err)
			}
		})
	}
}

func TestClampDayNeverRollsOver(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		day   int
		want  int
	}{
		{2023, time.February, 31, 28},
		{2024, time.February, 31, 29},
		{2024, time.April, 31, 30},
		{2024, time.March, 31, 31},
		{2024, time.June, 15, 15},
	}

	for _, tt := range tests {
		if got := clampDay(tt.year, tt.month, tt.day); got != tt.want {
			t.Errorf("clampDay(%d, %s, %d) = %d, want %d", tt.year, tt.month, tt.day, got, tt.want)
		}
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		year      int
		month     time.Month
		n         int
		wantYear  int
		wantMonth time.Month
	}{
		{2024, time.January, 1, 2024, time.February},
		{2024, time.December, 1, 2025, time.January},
		{2024, time.November, 14, 2026, time.January},
		{2024, time.June, 0, 2024, time.June},
	}

	for _, tt := range tests {
		gotYear, gotMonth := addMonths(tt.year, tt.month, tt.n)
		if gotYear != tt.wantYear || gotMonth != tt.wantMonth {
			t.Errorf("addMonths(%d, %s, %d) = (%d, %s), want (%d, %s)",
				tt.year, tt.month, tt.n, gotYear, gotMonth, tt.wantYear, tt.wantMonth)
		}
	}
}
