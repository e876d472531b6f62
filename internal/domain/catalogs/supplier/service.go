package supplier

import (
	"stockpile/internal/core/tx"
	"stockpile/internal/domain"
)

// Service provides supplier business logic.
type Service struct {
	*domain.CatalogService[*Supplier]
}

// NewService creates a supplier service.
func NewService(repo domain.CatalogRepository[*Supplier], txManager tx.Manager) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Supplier]{
			Repo:       repo,
			TxManager:  txManager,
			EntityName: "supplier",
		}),
	}
}
