package stock

import (
	"context"

	"github.com/shopspring/decimal"

	"stockpile/internal/core/id"
	"stockpile/internal/domain"
)

// Repository persists stock ledger rows.
//
// GetForUpdate and ApplyDelta must be called inside a transaction; the row
// lock taken by GetForUpdate serializes concurrent reconciliations of the
// same stock.
type Repository interface {
	domain.CatalogRepository[*Stock]

	// GetForUpdate loads a stock row with a row-level lock (SELECT ... FOR
	// UPDATE). Concurrent callers block until the owning transaction ends.
	GetForUpdate(ctx context.Context, id id.ID) (*Stock, error)

	// ApplyDelta atomically adds delta (which may be negative) to the
	// stock's quantity.
	ApplyDelta(ctx context.Context, id id.ID, delta decimal.Decimal) error
}
