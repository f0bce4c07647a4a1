// Package money converts between decimal amounts and integer minor units.
// All engine arithmetic happens in cents; decimals exist only at the
// boundaries, rounded half-up to 2 fraction digits.
package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ToCents converts a decimal amount to integer cents, rounding half-up.
func ToCents(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}

// FromCents converts integer cents back to a decimal amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Shift(-2)
}

// Normalize rounds an amount half-up to 2 fraction digits.
func Normalize(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// SumToCents sums a list of amounts in cents.
func SumToCents(amounts []decimal.Decimal) int64 {
	var total int64
	for _, a := range amounts {
		total += ToCents(a)
	}
	return total
}
