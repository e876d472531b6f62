// Package types provides core value types for quantities and money.
package types

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with exact decimal arithmetic.
// Stored in PostgreSQL as NUMERIC(10,2).
type Money = decimal.Decimal

// Quantity represents a stock quantity with exact decimal arithmetic.
// Same storage shape as Money: NUMERIC(10,2).
type Quantity = decimal.Decimal

// Scale is the number of fractional digits persisted for money and quantity.
const Scale = 2

// Zero returns decimal zero.
func Zero() decimal.Decimal {
	return decimal.Zero
}

// FromString parses a decimal from its string form.
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// MustFromString parses a decimal, panicking on error. For constants and tests.
func MustFromString(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Round2 rounds a value to the persisted scale (2 fractional digits).
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

// IsPositive reports whether d > 0.
func IsPositive(d decimal.Decimal) bool {
	return d.IsPositive()
}

// String2 formats a value with exactly two fractional digits.
func String2(d decimal.Decimal) string {
	return d.StringFixed(Scale)
}
