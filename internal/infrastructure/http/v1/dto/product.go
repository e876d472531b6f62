package dto

import (
	"github.com/shopspring/decimal"

	"stockpile/internal/core/id"
	"stockpile/internal/domain/catalogs/product"
)

// CreateProductRequest represents a request to create a product.
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  *string         `json:"categoryId,omitempty"`
	IsActive    *bool           `json:"isActive,omitempty"`
}

// ToEntity converts request to domain entity.
func (r *CreateProductRequest) ToEntity() (*product.Product, error) {
	p := product.New(r.Name, r.Price)
	p.Description = r.Description
	if r.CategoryID != nil && *r.CategoryID != "" {
		categoryID, err := id.Parse(*r.CategoryID)
		if err != nil {
			return nil, err
		}
		p.CategoryID = &categoryID
	}
	if r.IsActive != nil {
		p.IsActive = *r.IsActive
	}
	return p, nil
}

// UpdateProductRequest represents a request to update a product.
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	CategoryID  *string          `json:"categoryId,omitempty"`
	IsActive    *bool            `json:"isActive,omitempty"`
	Version     int              `json:"version" binding:"required,min=1"`
}

// ApplyTo applies updates to an existing entity. An empty categoryId string
// clears the category reference.
func (r *UpdateProductRequest) ApplyTo(p *product.Product) error {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Description != nil {
		p.Description = r.Description
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.CategoryID != nil {
		if *r.CategoryID == "" {
			p.CategoryID = nil
		} else {
			categoryID, err := id.Parse(*r.CategoryID)
			if err != nil {
				return err
			}
			p.CategoryID = &categoryID
		}
	}
	if r.IsActive != nil {
		p.IsActive = *r.IsActive
	}
	p.Version = r.Version
	p.Touch()
	return nil
}

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	CatalogResponse
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  *string         `json:"categoryId,omitempty"`
	IsActive    bool            `json:"isActive"`
}

// FromProduct converts domain entity to response DTO.
func FromProduct(p *product.Product) *ProductResponse {
	resp := &ProductResponse{
		CatalogResponse: FromCatalog(p.Catalog),
		Description:     p.Description,
		Price:           p.Price,
		IsActive:        p.IsActive,
	}
	if p.CategoryID != nil {
		s := p.CategoryID.String()
		resp.CategoryID = &s
	}
	return resp
}
