// Package stock_repo provides the PostgreSQL stock ledger repository.
package stock_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"stockpile/internal/core/apperror"
	"stockpile/internal/core/id"
	"stockpile/internal/domain/stock"
	"stockpile/internal/infrastructure/storage/postgres"
	"stockpile/internal/infrastructure/storage/postgres/catalog_repo"
)

// Compile-time interface check.
var _ stock.Repository = (*StockRepo)(nil)

// StockRepo persists stock ledger rows. Balance mutations go through
// ApplyDelta so the arithmetic happens in the database, inside the
// caller's transaction.
type StockRepo struct {
	*catalog_repo.BaseCatalogRepo[*stock.Stock]
	txManager *postgres.TxManager
}

// NewStockRepo creates a stock repository.
func NewStockRepo(txManager *postgres.TxManager) *StockRepo {
	return &StockRepo{
		BaseCatalogRepo: catalog_repo.NewBaseCatalogRepo(
			txManager,
			"stocks",
			postgres.ExtractDBColumns[stock.Stock](),
			func() *stock.Stock { return &stock.Stock{} },
		),
		txManager: txManager,
	}
}

// ApplyDelta atomically adds delta to the stock's quantity.
func (r *StockRepo) ApplyDelta(ctx context.Context, stockID id.ID, delta decimal.Decimal) error {
	q := r.Builder().
		Update("stocks").
		Set("quantity", squirrel.Expr("quantity + ?", delta)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": stockID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build quantity update: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("apply quantity delta: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("stocks", stockID.String())
	}

	return nil
}
