// Package sale provides sale transactions and their reconciliation against
// the stock ledger. A sale may never take more than the stock holds; the
// check runs against the row-locked balance.
package sale

import (
	"time"

	"github.com/shopspring/decimal"

	"stockpile/internal/core/apperror"
	"stockpile/internal/core/id"
	"stockpile/internal/domain/pricing"
)

// Item is a single sale transaction.
type Item struct {
	ID id.ID `db:"id" json:"id"`

	// StockID references the stock this sale draws from
	StockID id.ID `db:"stock_id" json:"stockId"`

	// Quantity sold, must be positive
	Quantity decimal.Decimal `db:"quantity" json:"quantity"`

	// UnitPrice charged per unit before discount
	UnitPrice decimal.Decimal `db:"unit_price" json:"unitPrice"`

	// Discount is a percentage in [0, 100]
	Discount decimal.Decimal `db:"discount" json:"discount"`

	// TotalPrice is derived server-side as Quantity * UnitPrice * (1 - Discount/100)
	TotalPrice decimal.Decimal `db:"total_price" json:"totalPrice"`

	// Date is the business date of the transaction
	Date time.Time `db:"date" json:"date"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Validate checks field-level invariants.
func (i *Item) Validate() error {
	if id.IsNil(i.StockID) {
		return apperror.NewValidation("stock is required").
			WithDetail("field", "stockId")
	}
	if !i.Quantity.IsPositive() {
		return apperror.NewValidation("quantity must be greater than zero").
			WithDetail("field", "quantity")
	}
	if i.UnitPrice.IsNegative() {
		return apperror.NewValidation("unit price must not be negative").
			WithDetail("field", "unitPrice")
	}
	if err := pricing.ValidateDiscount(i.Discount); err != nil {
		return err
	}
	return nil
}
