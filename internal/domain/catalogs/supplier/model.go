// Package supplier provides the supplier catalog.
// Suppliers are referenced by purchase transactions; deleting a supplier
// keeps the purchase history with a null reference.
package supplier

import (
	"regexp"

	"stockpile/internal/core/apperror"
	"stockpile/internal/core/entity"
)

var emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Supplier represents a goods vendor.
type Supplier struct {
	entity.Catalog

	// Email is the primary contact email
	Email *string `db:"email" json:"email,omitempty"`

	// Phone is the primary contact phone
	Phone *string `db:"phone" json:"phone,omitempty"`

	// Address is a free-form postal address
	Address *string `db:"address" json:"address,omitempty"`
}

// New creates a Supplier with required fields.
func New(name string) *Supplier {
	return &Supplier{
		Catalog: entity.NewCatalog(name),
	}
}

// Validate implements entity.Validatable.
func (s *Supplier) Validate() error {
	if err := s.Catalog.Validate(); err != nil {
		return err
	}

	if s.Email != nil && *s.Email != "" && !emailRE.MatchString(*s.Email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email")
	}

	return nil
}
