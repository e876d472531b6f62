package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"stockpile/internal/core/id"
	"stockpile/internal/domain/transactions/purchase"
)

// CreatePurchaseRequest represents a request to record a purchase.
// The total price is always computed server-side.
type CreatePurchaseRequest struct {
	StockID    string          `json:"stockId" binding:"required"`
	SupplierID *string         `json:"supplierId,omitempty"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Date       *time.Time      `json:"date,omitempty"`
}

// ToEntity converts request to domain entity.
func (r *CreatePurchaseRequest) ToEntity() (*purchase.Item, error) {
	stockID, err := id.Parse(r.StockID)
	if err != nil {
		return nil, err
	}

	item := &purchase.Item{
		StockID:   stockID,
		Quantity:  r.Quantity,
		UnitPrice: r.UnitPrice,
	}
	if r.SupplierID != nil && *r.SupplierID != "" {
		supplierID, err := id.Parse(*r.SupplierID)
		if err != nil {
			return nil, err
		}
		item.SupplierID = &supplierID
	}
	if r.Date != nil {
		item.Date = *r.Date
	}
	return item, nil
}

// UpdatePurchaseRequest represents a request to edit a purchase.
type UpdatePurchaseRequest struct {
	StockID    *string          `json:"stockId,omitempty"`
	SupplierID *string          `json:"supplierId,omitempty"`
	Quantity   *decimal.Decimal `json:"quantity,omitempty"`
	UnitPrice  *decimal.Decimal `json:"unitPrice,omitempty"`
}

// ApplyTo applies updates to an existing entity. An empty supplierId string
// clears the supplier reference.
func (r *UpdatePurchaseRequest) ApplyTo(item *purchase.Item) error {
	if r.StockID != nil {
		stockID, err := id.Parse(*r.StockID)
		if err != nil {
			return err
		}
		item.StockID = stockID
	}
	if r.SupplierID != nil {
		if *r.SupplierID == "" {
			item.SupplierID = nil
		} else {
			supplierID, err := id.Parse(*r.SupplierID)
			if err != nil {
				return err
			}
			item.SupplierID = &supplierID
		}
	}
	if r.Quantity != nil {
		item.Quantity = *r.Quantity
	}
	if r.UnitPrice != nil {
		item.UnitPrice = *r.UnitPrice
	}
	return nil
}

// PurchaseResponse represents a purchase in API responses.
type PurchaseResponse struct {
	ID         string          `json:"id"`
	StockID    string          `json:"stockId"`
	SupplierID *string         `json:"supplierId,omitempty"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Date       time.Time       `json:"date"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// FromPurchase converts domain entity to response DTO.
func FromPurchase(item *purchase.Item) *PurchaseResponse {
	resp := &PurchaseResponse{
		ID:         item.ID.String(),
		StockID:    item.StockID.String(),
		Quantity:   item.Quantity,
		UnitPrice:  item.UnitPrice,
		TotalPrice: item.TotalPrice,
		Date:       item.Date,
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}
	if item.SupplierID != nil {
		s := item.SupplierID.String()
		resp.SupplierID = &s
	}
	return resp
}

// PurchaseListResponse represents a list of purchases.
type PurchaseListResponse struct {
	Items      []*PurchaseResponse `json:"items"`
	TotalCount int64               `json:"totalCount"`
	Limit      int                 `json:"limit"`
	Offset     int                 `json:"offset"`
}
