// Package stock provides the stock ledger: one row per stock keeping the
// current on-hand quantity. The quantity is mutated only by purchase and
// sale reconciliation, never through the catalog surface.
package stock

import (
	"github.com/shopspring/decimal"

	"stockpile/internal/core/entity"
)

// Stock is a ledger row holding the current balance for a named stock.
type Stock struct {
	entity.Catalog

	// Quantity is the current on-hand balance. Updated only by the
	// purchase/sale reconcilers under a row lock.
	Quantity decimal.Decimal `db:"quantity" json:"quantity"`
}

// New creates a Stock with a zero balance.
func New(name string) *Stock {
	return &Stock{
		Catalog:  entity.NewCatalog(name),
		Quantity: decimal.Zero,
	}
}

// Validate implements entity.Validatable.
func (s *Stock) Validate() error {
	return s.Catalog.Validate()
}

// HasAtLeast reports whether the balance covers the requested quantity.
func (s *Stock) HasAtLeast(quantity decimal.Decimal) bool {
	return s.Quantity.GreaterThanOrEqual(quantity)
}
