package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"stockpile/internal/core/id"
	"stockpile/internal/domain/transactions/sale"
)

// CreateSaleRequest represents a request to record a sale.
// The total price is always computed server-side.
type CreateSaleRequest struct {
	StockID   string          `json:"stockId" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Discount  decimal.Decimal `json:"discount"`
	Date      *time.Time      `json:"date,omitempty"`
}

// ToEntity converts request to domain entity.
func (r *CreateSaleRequest) ToEntity() (*sale.Item, error) {
	stockID, err := id.Parse(r.StockID)
	if err != nil {
		return nil, err
	}

	item := &sale.Item{
		StockID:   stockID,
		Quantity:  r.Quantity,
		UnitPrice: r.UnitPrice,
		Discount:  r.Discount,
	}
	if r.Date != nil {
		item.Date = *r.Date
	}
	return item, nil
}

// UpdateSaleRequest represents a request to edit a sale.
type UpdateSaleRequest struct {
	StockID   *string          `json:"stockId,omitempty"`
	Quantity  *decimal.Decimal `json:"quantity,omitempty"`
	UnitPrice *decimal.Decimal `json:"unitPrice,omitempty"`
	Discount  *decimal.Decimal `json:"discount,omitempty"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdateSaleRequest) ApplyTo(item *sale.Item) error {
	if r.StockID != nil {
		stockID, err := id.Parse(*r.StockID)
		if err != nil {
			return err
		}
		item.StockID = stockID
	}
	if r.Quantity != nil {
		item.Quantity = *r.Quantity
	}
	if r.UnitPrice != nil {
		item.UnitPrice = *r.UnitPrice
	}
	if r.Discount != nil {
		item.Discount = *r.Discount
	}
	return nil
}

// SaleResponse represents a sale in API responses.
type SaleResponse struct {
	ID         string          `json:"id"`
	StockID    string          `json:"stockId"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Discount   decimal.Decimal `json:"discount"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Date       time.Time       `json:"date"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// FromSale converts domain entity to response DTO.
func FromSale(item *sale.Item) *SaleResponse {
	return &SaleResponse{
		ID:         item.ID.String(),
		StockID:    item.StockID.String(),
		Quantity:   item.Quantity,
		UnitPrice:  item.UnitPrice,
		Discount:   item.Discount,
		TotalPrice: item.TotalPrice,
		Date:       item.Date,
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}
}

// SaleListResponse represents a list of sales.
type SaleListResponse struct {
	Items      []*SaleResponse `json:"items"`
	TotalCount int64           `json:"totalCount"`
	Limit      int             `json:"limit"`
	Offset     int             `json:"offset"`
}
