// Package pricing derives transaction totals from quantity, unit price and
// discount. Totals are always recomputed server-side and never taken from
// client input.
package pricing

import (
	"github.com/shopspring/decimal"

	"stockpile/internal/core/apperror"
	"stockpile/internal/core/types"
)

var hundred = decimal.NewFromInt(100)

// Calculator computes transaction total prices with exact decimal arithmetic.
type Calculator struct{}

// NewCalculator creates a price calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// PurchaseTotal returns quantity * unitPrice rounded to the persisted scale.
func (c *Calculator) PurchaseTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return types.Round2(quantity.Mul(unitPrice))
}

// SaleTotal returns quantity * unitPrice * (1 - discount/100) rounded to the
// persisted scale. Discount is a percentage in [0, 100].
func (c *Calculator) SaleTotal(quantity, unitPrice, discount decimal.Decimal) decimal.Decimal {
	factor := hundred.Sub(discount).Div(hundred)
	return types.Round2(quantity.Mul(unitPrice).Mul(factor))
}

// ValidateDiscount checks that a discount percentage is within [0, 100].
func ValidateDiscount(discount decimal.Decimal) error {
	if discount.IsNegative() || discount.GreaterThan(hundred) {
		return apperror.NewValidation("discount must be between 0 and 100")
	}
	return nil
}
