// Package product provides the product catalog.
package product

import (
	"github.com/shopspring/decimal"

	"stockpile/internal/core/apperror"
	"stockpile/internal/core/entity"
	"stockpile/internal/core/id"
)

// Product is a sellable item definition. It carries a reference price;
// actual transaction prices are recorded on purchase and sale items.
type Product struct {
	entity.Catalog

	// Description is a free-form note
	Description *string `db:"description" json:"description,omitempty"`

	// Price is the reference unit price
	Price decimal.Decimal `db:"price" json:"price"`

	// CategoryID references the owning category, optional
	CategoryID *id.ID `db:"category_id" json:"categoryId,omitempty"`

	// IsActive marks whether the product is available for new transactions
	IsActive bool `db:"is_active" json:"isActive"`
}

// New creates a Product with required fields.
func New(name string, price decimal.Decimal) *Product {
	return &Product{
		Catalog:  entity.NewCatalog(name),
		Price:    price,
		IsActive: true,
	}
}

// Validate implements entity.Validatable.
func (p *Product) Validate() error {
	if err := p.Catalog.Validate(); err != nil {
		return err
	}

	if p.Price.IsNegative() {
		return apperror.NewValidation("price must not be negative").
			WithDetail("field", "price")
	}

	return nil
}
