// Package purchase provides purchase transactions and their reconciliation
// against the stock ledger. Creating a purchase increases the referenced
// stock's balance; editing reverts the old effect before applying the new
// one; deleting reverts the effect without a floor check.
package purchase

import (
	"time"

	"github.com/shopspring/decimal"

	"stockpile/internal/core/apperror"
	"stockpile/internal/core/id"
)

// Item is a single purchase transaction.
type Item struct {
	ID id.ID `db:"id" json:"id"`

	// StockID references the stock this purchase replenishes
	StockID id.ID `db:"stock_id" json:"stockId"`

	// SupplierID is optional; deleting the supplier nulls it out
	SupplierID *id.ID `db:"supplier_id" json:"supplierId,omitempty"`

	// Quantity purchased, must be positive
	Quantity decimal.Decimal `db:"quantity" json:"quantity"`

	// UnitPrice paid per unit
	UnitPrice decimal.Decimal `db:"unit_price" json:"unitPrice"`

	// TotalPrice is derived server-side as Quantity * UnitPrice
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
	return nil
}
