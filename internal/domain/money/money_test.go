package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestToCents(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   int64
	}{
		{"whole amount", "100", 10000},
		{"two fraction digits", "33.33", 3333},
		{"half cent rounds up", "10.005", 1001},
		{"just below half cent rounds down", "10.004", 1000},
		{"zero", "0", 0},
		{"large amount", "123456.78", 12345678},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := decimal.NewFromString(tt.amount)
			if err != nil {
				t.Fatalf("invalid test amount %q: %v", tt.amount, err)
			}
			if got := ToCents(amount); got != tt.want {
				t.Errorf("ToCents(%s) = %d, want %d", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFromCents(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		want  string
	}{
		{"whole", 10000, "100"},
		{"fractional", 3334, "33.34"},
		{"single cent", 1, "0.01"},
		{"zero", 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, _ := decimal.NewFromString(tt.want)
			if got := FromCents(tt.cents); !got.Equal(want) {
				t.Errorf("FromCents(%d) = %s, want %s", tt.cents, got, want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// Any 2-dp amount must survive the cents round trip exactly.
	for cents := int64(0); cents < 1000; cents++ {
		if got := ToCents(FromCents(cents)); got != cents {
			t.Fatalf("round trip of %d cents produced %d", cents, got)
		}
	}
}

func TestSumToCents(t *testing.T) {
	amounts := []decimal.Decimal{
		decimal.RequireFromString("33.34"),
		decimal.RequireFromString("33.33"),
		decimal.RequireFromString("33.33"),
	}
	if got := SumToCents(amounts); got != 10000 {
		t.Errorf("SumToCents = %d, want 10000", got)
	}
}
