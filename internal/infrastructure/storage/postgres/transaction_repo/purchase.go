package transaction_repo

import (
	"context"

	"stockpile/internal/core/id"
	"stockpile/internal/domain/transactions/purchase"
	"stockpile/internal/infrastructure/storage/postgres"
)

// Compile-time interface check.
var _ purchase.Repository = (*PurchaseRepo)(nil)

// PurchaseRepo persists purchase transactions.
type PurchaseRepo struct {
	*baseTransactionRepo[*purchase.Item]
}

// NewPurchaseRepo creates a purchase repository.
func NewPurchaseRepo(txManager *postgres.TxManager) *PurchaseRepo {
	return &PurchaseRepo{
		baseTransactionRepo: newBaseTransactionRepo(
			txManager,
			"purchase_items",
			postgres.ExtractDBColumns[purchase.Item](),
			func() *purchase.Item { return &purchase.Item{} },
		),
	}
}

// Create inserts a purchase transaction.
func (r *PurchaseRepo) Create(ctx context.Context, item *purchase.Item) error {
	return r.create(ctx, item)
}

// GetByID retrieves a purchase transaction by ID.
func (r *PurchaseRepo) GetByID(ctx context.Context, itemID id.ID) (*purchase.Item, error) {
	return r.getByID(ctx, itemID)
}

// Update modifies a purchase transaction.
func (r *PurchaseRepo) Update(ctx context.Context, item *purchase.Item) error {
	return r.update(ctx, item)
}

// Delete removes a purchase transaction.
func (r *PurchaseRepo) Delete(ctx context.Context, itemID id.ID) error {
	return r.delete(ctx, itemID)
}

// List retrieves purchase transactions, newest first.
func (r *PurchaseRepo) List(ctx context.Context, filter purchase.ListFilter) (purchase.ListResult, error) {
	items, total, err := r.list(ctx, filter.StockID, filter.Limit, filter.Offset)
	if err != nil {
		return purchase.ListResult{}, err
	}
	return purchase.ListResult{
		Items:      items,
		TotalCount: total,
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	}, nil
}
