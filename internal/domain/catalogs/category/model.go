// Package category provides the product category catalog.
package category

import (
	"stockpile/internal/core/entity"
)

// Category groups products for navigation and reporting.
type Category struct {
	entity.Catalog

	// Description is a free-form note
	Description *string `db:"description" json:"description,omitempty"`
}

// New creates a Category with required fields.
func New(name string) *Category {
	return &Category{
		Catalog: entity.NewCatalog(name),
	}
}

// Validate implements entity.Validatable.
func (c *Category) Validate() error {
	return c.Catalog.Validate()
}
