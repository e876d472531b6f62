package dto

import (
	"github.com/shopspring/decimal"

	"stockpile/internal/domain/stock"
)

// CreateStockRequest represents a request to register a stock.
// There is no quantity field: new stocks start at zero and the balance is
// owned by the purchase/sale reconcilers.
type CreateStockRequest struct {
	Name string `json:"name" binding:"required"`
}

// ToEntity converts request to domain entity.
func (r *CreateStockRequest) ToEntity() *stock.Stock {
	return stock.New(r.Name)
}

// UpdateStockRequest represents a request to rename a stock.
type UpdateStockRequest struct {
	Name    string `json:"name" binding:"required"`
	Version int    `json:"version" binding:"required,min=1"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdateStockRequest) ApplyTo(s *stock.Stock) {
	s.Name = r.Name
	s.Version = r.Version
	s.Touch()
}

// StockResponse represents a stock in API responses.
type StockResponse struct {
	CatalogResponse
	Quantity decimal.Decimal `json:"quantity"`
}

// FromStock converts domain entity to response DTO.
func FromStock(s *stock.Stock) *StockResponse {
	return &StockResponse{
		CatalogResponse: FromCatalog(s.Catalog),
		Quantity:        s.Quantity,
	}
}
