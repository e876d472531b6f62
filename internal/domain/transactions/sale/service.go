package sale

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

// Service reconciles sale transactions against the stock ledger.
// The availability check and the balance write happen under the same row
// lock, so two concurrent sales cannot both pass the check.
type Service struct {
	repo      Repository
	stocks    stock.Repository
	calc      *pricing.Calculator
	txManager tx.Manager
}

// NewService creates a sale service.
func NewService(repo Repository, stocks stock.Repository, calc *pricing.Calculator, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		stocks:    stocks,
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

// Create records a sale and subtracts its quantity from the stock balance.
// Fails with an insufficient-stock error when the locked balance does not
// cover the quantity.
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
	item.TotalPrice = s.calc.SaleTotal(item.Quantity, item.UnitPrice, item.Discount)

	err := s.txManager.RunInTransactionWithRetry(ctx, func(ctx context.Context) error {
		st, err := s.lockStock(ctx, item.StockID)
		if err != nil {
			return err
		}
		if !st.HasAtLeast(item.Quantity) {
			return apperror.NewInsufficientStock(st.ID.String(), item.Quantity, st.Quantity)
		}
		if err := s.repo.Create(ctx, item); err != nil {
			return fmt.Errorf("create sale: %w", err)
		}
		if err := s.stocks.ApplyDelta(ctx, st.ID, item.Quantity.Neg()); err != nil {
			return fmt.Errorf("apply sale to stock: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "sale created",
		"sale_id", item.ID, "stock_id", item.StockID, "quantity", item.Quantity)
	return nil
}

// GetByID retrieves a sale by ID.
func (s *Service) GetByID(ctx context.Context, itemID id.ID) (*Item, error) {
	item, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("sale", itemID.String())
		}
		return nil, err
	}
	return item, nil
}

// Update edits a sale with give-back-then-take semantics: the old quantity
// is returned to the referenced stock first, the sufficiency check runs
// against that restored balance, then the new quantity is taken. When the
// update re-points the sale to another stock, both writes land on that
// stock.
func (s *Service) Update(ctx context.Context, item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	err := s.txManager.RunInTransactionWithRetry(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetByID(ctx, item.ID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewNotFound("sale", item.ID.String())
			}
			return err
		}

		st, err := s.lockStock(ctx, item.StockID)
		if err != nil {
			return err
		}

		if err := s.stocks.ApplyDelta(ctx, st.ID, existing.Quantity); err != nil {
			return fmt.Errorf("revert sale from stock: %w", err)
		}

		restored := st.Quantity.Add(existing.Quantity)
		if restored.LessThan(item.Quantity) {
			return apperror.NewInsufficientStock(st.ID.String(), item.Quantity, restored)
		}

		item.Date = existing.Date
		item.CreatedAt = existing.CreatedAt
		item.UpdatedAt = time.Now().UTC()
		item.TotalPrice = s.calc.SaleTotal(item.Quantity, item.UnitPrice, item.Discount)
		if err := s.repo.Update(ctx, item); err != nil {
			return fmt.Errorf("update sale: %w", err)
		}

		if err := s.stocks.ApplyDelta(ctx, st.ID, item.Quantity.Neg()); err != nil {
			return fmt.Errorf("apply sale to stock: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "sale updated",
		"sale_id", item.ID, "stock_id", item.StockID, "quantity", item.Quantity)
	return nil
}

// Delete removes a sale and returns its quantity to the stock.
func (s *Service) Delete(ctx context.Context, itemID id.ID) error {
	err := s.txManager.RunInTransactionWithRetry(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetByID(ctx, itemID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewNotFound("sale", itemID.String())
			}
			return err
		}

		st, err := s.lockStock(ctx, existing.StockID)
		if err != nil {
			return err
		}

		if err := s.repo.Delete(ctx, itemID); err != nil {
			return fmt.Errorf("delete sale: %w", err)
		}
		if err := s.stocks.ApplyDelta(ctx, st.ID, existing.Quantity); err != nil {
			return fmt.Errorf("revert sale from stock: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "sale deleted", "sale_id", itemID)
	return nil
}

// List retrieves sales ordered by date descending.
func (s *Service) List(ctx context.Context, filter ListFilter) (ListResult, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	return s.repo.List(ctx, filter)
}
