package stock

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"stockpile/internal/core/apperror"
	"stockpile/internal/core/id"
	"stockpile/internal/core/tx"
	"stockpile/internal/domain"
	"stockpile/pkg/logger"
)

// Service provides stock catalog operations. Quantity is read-only here:
// new stocks start at zero and updates never touch the balance.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a stock service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
	}
}

// Create registers a new stock with a zero balance.
func (s *Service) Create(ctx context.Context, st *Stock) error {
	if err := st.Validate(); err != nil {
		if apperror.IsAppError(err) {
			return err
		}
		return apperror.NewValidation(err.Error())
	}

	// Balance is owned by the reconcilers.
	st.Quantity = decimal.Zero

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, st); err != nil {
			return fmt.Errorf("create stock: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a stock by ID.
func (s *Service) GetByID(ctx context.Context, stockID id.ID) (*Stock, error) {
	st, err := s.repo.GetByID(ctx, stockID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("stock", stockID.String())
		}
		return nil, err
	}
	return st, nil
}

// Update renames a stock. The quantity from the request is discarded and
// the persisted balance kept.
func (s *Service) Update(ctx context.Context, st *Stock) error {
	if err := st.Validate(); err != nil {
		if apperror.IsAppError(err) {
			return err
		}
		return apperror.NewValidation(err.Error())
	}

	return s.txManager.RunInTransactionWithRetry(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetForUpdate(ctx, st.ID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewNotFound("stock", st.ID.String())
			}
			return err
		}
		st.Quantity = current.Quantity
		if err := s.repo.Update(ctx, st); err != nil {
			return fmt.Errorf("update stock: %w", err)
		}
		return nil
	})
}

// Delete removes a stock and, via foreign keys, its purchase and sale
// history. The row lock keeps a concurrent reconciliation from applying a
// movement to a disappearing stock.
func (s *Service) Delete(ctx context.Context, stockID id.ID) error {
	err := s.txManager.RunInTransactionWithRetry(ctx, func(ctx context.Context) error {
		if _, err := s.repo.GetForUpdate(ctx, stockID); err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewNotFound("stock", stockID.String())
			}
			return err
		}
		if err := s.repo.Delete(ctx, stockID); err != nil {
			return fmt.Errorf("delete stock: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "stock deleted with transaction history", "stock_id", stockID)
	return nil
}

// List retrieves stocks with filtering.
func (s *Service) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*Stock], error) {
	return s.repo.List(ctx, filter)
}

// Exists checks whether a stock exists.
func (s *Service) Exists(ctx context.Context, stockID id.ID) (bool, error) {
	return s.repo.Exists(ctx, stockID)
}
