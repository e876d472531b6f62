package transaction_repo

import (
	"context"

	"stockpile/internal/core/id"
	"stockpile/internal/domain/transactions/sale"
	"stockpile/internal/infrastructure/storage/postgres"
)

// Compile-time interface check.
var _ sale.Repository = (*SaleRepo)(nil)

// SaleRepo persists sale transactions.
type SaleRepo struct {
	*baseTransactionRepo[*sale.Item]
}

// NewSaleRepo creates a sale repository.
func NewSaleRepo(txManager *postgres.TxManager) *SaleRepo {
	return &SaleRepo{
		baseTransactionRepo: newBaseTransactionRepo(
			txManager,
			"sale_items",
			postgres.ExtractDBColumns[sale.Item](),
			func() *sale.Item { return &sale.Item{} },
		),
	}
}

// Create inserts a sale transaction.
func (r *SaleRepo) Create(ctx context.Context, item *sale.Item) error {
	return r.create(ctx, item)
}

// GetByID retrieves a sale transaction by ID.
func (r *SaleRepo) GetByID(ctx context.Context, itemID id.ID) (*sale.Item, error) {
	return r.getByID(ctx, itemID)
}

// Update modifies a sale transaction.
func (r *SaleRepo) Update(ctx context.Context, item *sale.Item) error {
	return r.update(ctx, item)
}

// Delete removes a sale transaction.
func (r *SaleRepo) Delete(ctx context.Context, itemID id.ID) error {
	return r.delete(ctx, itemID)
}

// List retrieves sale transactions, newest first.
func (r *SaleRepo) List(ctx context.Context, filter sale.ListFilter) (sale.ListResult, error) {
	items, total, err := r.list(ctx, filter.StockID, filter.Limit, filter.Offset)
	if err != nil {
		return sale.ListResult{}, err
	}
	return sale.ListResult{
		Items:      items,
		TotalCount: total,
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	}, nil
}
