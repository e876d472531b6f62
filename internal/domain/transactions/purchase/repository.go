package purchase

import (
	"context"

	"stockpile/internal/core/id"
)

// ListFilter selects purchase transactions.
type ListFilter struct {
	// StockID restricts results to one stock
	StockID *id.ID

	Limit  int
	Offset int
}

// ListResult is a page of purchase transactions ordered by date descending.
type ListResult struct {
	Items      []*Item `json:"items"`
	TotalCount int64   `json:"totalCount"`
	Limit      int     `json:"limit"`
	Offset     int     `json:"offset"`
}

// Repository persists purchase transactions.
type Repository interface {
	Create(ctx context.Context, item *Item) error
	GetByID(ctx context.Context, id id.ID) (*Item, error)
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id id.ID) error
	List(ctx context.Context, filter ListFilter) (ListResult, error)
}
