package purchase

import (
	"context"
	"fmt"
	"time"

	"stockpile/internal/core/apperror"
	"stockpile/internal/core/id"
	"stockpile/internal/core/tx"
	"stockpile/internal/domain/pricing"
	"stockpile/internal/domain/stock"
	"stockpile/pkg/logger"
)

// SupplierChecker verifies that a referenced supplier exists.
type SupplierChecker interface {
	Exists(ctx context.Context, id id.ID) (bool, error)
}

// Service reconciles purchase transactions against the stock ledger.
// Every mutation runs in one transaction that first locks the stock row,
// so concurrent operations on the same stock serialize.
type Service struct {
	repo      Repository
	stocks    stock.Repository
	suppliers SupplierChecker
	calc      *pricing.Calculator
	txManager tx.Manager
}

// NewService creates a purchase service.
func NewService(repo Repository, stocks stock.Repository, suppliers SupplierChecker, calc *pricing.Calculator, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		stocks:    stocks,
		suppliers: suppliers,
		calc:      calc,
		txManager: txManager,
	}
}

func (s *Service) lockStock(ctx context.Context, stockID id.ID) (*stock.Stock, error) {
	st, err := s.stocks.GetForUpdate(ctx, stockID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("stock", stockID.String())
		}
		return nil, err
	}
	return st, nil
}

func (s *Service) checkSupplier(ctx context.Context, supplierID *id.ID) error {
	if supplierID == nil {
		return nil
	}
	exists, err := s.suppliers.Exists(ctx, *supplierID)
	if err != nil {
		return apperror.NewInternal(err)
	}
	if !exists {
		return apperror.NewNotFound("supplier", supplierID.String())
	}
	return nil
}

// Create records a purchase and adds its quantity to the stock balance.
func (s *Service) Create(ctx context.Context, item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	if id.IsNil(item.ID) {
		item.ID = id.New()
	}
	now := time.Now().UTC()
	if item.Date.IsZero() {
		item.Date = now
	}
	item.CreatedAt = now
	item.UpdatedAt = now
	item.TotalPrice = s.calc.PurchaseTotal(item.Quantity, item.UnitPrice)

	err := s.txManager.RunInTransactionWithRetry(ctx, func(ctx context.Context) error {
		st, err := s.lockStock(ctx, item.StockID)
		if err != nil {
			return err
		}
		if err := s.checkSupplier(ctx, item.SupplierID); err != nil {
			return err
		}
		if err := s.repo.Create(ctx, item); err != nil {
			return fmt.Errorf("create purchase: %w", err)
		}
		if err := s.stocks.ApplyDelta(ctx, st.ID, item.Quantity); err != nil {
			return fmt.Errorf("apply purchase to stock: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "purchase created",
		"purchase_id", item.ID, "stock_id", item.StockID, "quantity", item.Quantity)
	return nil
}

// GetByID retrieves a purchase by ID.
func (s *Service) GetByID(ctx context.Context, itemID id.ID) (*Item, error) {
	item, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("purchase", itemID.String())
		}
		return nil, err
	}
	return item, nil
}

// Update edits a purchase. The previous quantity is reverted from the
// referenced stock and the new quantity applied, as two separate ledger
// writes inside one transaction. When the update re-points the purchase to
// another stock, both the revert and the new effect land on that stock.
func (s *Service) Update(ctx context.Context, item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	err := s.txManager.RunInTransactionWithRetry(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetByID(ctx, item.ID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewNotFound("purchase", item.ID.String())
			}
			return err
		}

		st, err := s.lockStock(ctx, item.StockID)
		if err != nil {
			return err
		}
		if err := s.checkSupplier(ctx, item.SupplierID); err != nil {
			return err
		}

		if err := s.stocks.ApplyDelta(ctx, st.ID, existing.Quantity.Neg()); err != nil {
			return fmt.Errorf("revert purchase from stock: %w", err)
		}

		item.Date = existing.Date
		item.CreatedAt = existing.CreatedAt
		item.UpdatedAt = time.Now().UTC()
		item.TotalPrice = s.calc.PurchaseTotal(item.Quantity, item.UnitPrice)
		if err := s.repo.Update(ctx, item); err != nil {
			return fmt.Errorf("update purchase: %w", err)
		}

		if err := s.stocks.ApplyDelta(ctx, st.ID, item.Quantity); err != nil {
			return fmt.Errorf("apply purchase to stock: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "purchase updated",
		"purchase_id", item.ID, "stock_id", item.StockID, "quantity", item.Quantity)
	return nil
}

// Delete removes a purchase and subtracts its quantity from the stock.
// There is no floor check: if part of the purchased goods was already sold,
// the balance goes negative and stays visible until corrected.
func (s *Service) Delete(ctx context.Context, itemID id.ID) error {
	err := s.txManager.RunInTransactionWithRetry(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetByID(ctx, itemID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewNotFound("purchase", itemID.String())
			}
			return err
		}

		st, err := s.lockStock(ctx, existing.StockID)
		if err != nil {
			return err
		}

		if err := s.repo.Delete(ctx, itemID); err != nil {
			return fmt.Errorf("delete purchase: %w", err)
		}
		if err := s.stocks.ApplyDelta(ctx, st.ID, existing.Quantity.Neg()); err != nil {
			return fmt.Errorf("revert purchase from stock: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "purchase deleted", "purchase_id", itemID)
	return nil
}

// List retrieves purchases ordered by date descending.
func (s *Service) List(ctx context.Context, filter ListFilter) (ListResult, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	return s.repo.List(ctx, filter)
}
