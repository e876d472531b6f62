package category

import (
	"stockpile/internal/core/tx"
	"stockpile/internal/domain"
)

// Service provides category business logic.
type Service struct {
	*domain.CatalogService[*Category]
}

// NewService creates a category service.
func NewService(repo domain.CatalogRepository[*Category], txManager tx.Manager) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Category]{
			Repo:       repo,
			TxManager:  txManager,
			EntityName: "category",
		}),
	}
}
