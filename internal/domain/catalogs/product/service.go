package product

import (
	"context"

	"stockpile/internal/core/apperror"
	"stockpile/internal/core/id"
	"stockpile/internal/core/tx"
	"stockpile/internal/domain"
)

// CategoryChecker verifies that a referenced category exists.
type CategoryChecker interface {
	Exists(ctx context.Context, id id.ID) (bool, error)
}

// Service provides product business logic.
type Service struct {
	*domain.CatalogService[*Product]
}

// NewService creates a product service. Category references are verified
// on create and update through a before-hook.
func NewService(repo domain.CatalogRepository[*Product], txManager tx.Manager, categories CategoryChecker) *Service {
	svc := &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Product]{
			Repo:       repo,
			TxManager:  txManager,
			EntityName: "product",
		}),
	}

	checkCategory := func(ctx context.Context, p *Product) error {
		if p.CategoryID == nil {
			return nil
		}
		exists, err := categories.Exists(ctx, *p.CategoryID)
		if err != nil {
			return apperror.NewInternal(err)
		}
		if !exists {
			return apperror.NewNotFound("category", p.CategoryID.String())
		}
		return nil
	}
	svc.Hooks().OnBeforeCreate(checkCategory)
	svc.Hooks().OnBeforeUpdate(checkCategory)

	return svc
}
