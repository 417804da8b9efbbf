package decimal

import (
	"github.com/shopspring/decimal"
)

// Zero is decimal zero
var Zero = decimal.Zero

var hundred = decimal.NewFromInt(100)

// FromString parses decimal from string
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// ToCents scales an amount to whole cents, truncating sub-cent digits
func ToCents(d decimal.Decimal) int64 {
	return d.Mul(hundred).Truncate(0).IntPart()
}

// FromCents converts whole cents back to a two-place amount
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// IsNonNegative returns true if decimal is >= zero
func IsNonNegative(d decimal.Decimal) bool {
	return d.GreaterThanOrEqual(Zero)
}

// FormatEUR renders an amount with exactly two fractional digits
func FormatEUR(d decimal.Decimal) string {
	return d.StringFixed(2)
}
