// Package entity provides base types shared by all domain entities.
package entity

import (
	"time"

	"stockpile/internal/core/apperror"
	"stockpile/internal/core/id"
)

// Validatable is implemented by entities that can validate themselves.
type Validatable interface {
	Validate() error
}

// Base contains fields common to every persisted entity.
type Base struct {
	ID        id.ID     `json:"id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Identifiable is implemented by entities with a primary identifier.
type Identifiable interface {
	GetID() id.ID
	SetID(id.ID)
}

// GetID returns the entity identifier.
func (b *Base) GetID() id.ID {
	return b.ID
}

// SetID sets the entity identifier.
func (b *Base) SetID(v id.ID) {
	b.ID = v
}

// Touch updates the modification timestamp.
func (b *Base) Touch() {
	b.UpdatedAt = time.Now().UTC()
}

// Catalog is the base for reference-data entities (categories, suppliers, ...).
// Version supports optimistic locking on update.
type Catalog struct {
	Base
	Name    string `json:"name" db:"name"`
	Version int    `json:"version" db:"version"`
}

// NewCatalog creates a catalog base with a fresh UUIDv7 and timestamps.
func NewCatalog(name string) Catalog {
	now := time.Now().UTC()
	return Catalog{
		Base: Base{
			ID:        id.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:    name,
		Version: 1,
	}
}

// Versioned is implemented by entities guarded by optimistic locking.
type Versioned interface {
	GetVersion() int
	SetVersion(int)
}

// GetVersion returns the optimistic lock version.
func (c *Catalog) GetVersion() int {
	return c.Version
}

// SetVersion sets the optimistic lock version.
func (c *Catalog) SetVersion(v int) {
	c.Version = v
}

// Validate checks base catalog invariants.
func (c *Catalog) Validate() error {
	if c.Name == "" {
		return apperror.NewValidation("name is required")
	}
	if len(c.Name) > 255 {
		return apperror.NewValidation("name must not exceed 255 characters")
	}
	return nil
}
