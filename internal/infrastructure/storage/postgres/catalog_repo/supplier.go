package catalog_repo

import (
	"stockpile/internal/domain"
	"stockpile/internal/domain/catalogs/supplier"
	"stockpile/internal/infrastructure/storage/postgres"
)

// Compile-time interface check.
var _ domain.CatalogRepository[*supplier.Supplier] = (*SupplierRepo)(nil)

// SupplierRepo persists suppliers.
type SupplierRepo struct {
	*BaseCatalogRepo[*supplier.Supplier]
}

// NewSupplierRepo creates a supplier repository.
func NewSupplierRepo(txManager *postgres.TxManager) *SupplierRepo {
	return &SupplierRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			"suppliers",
			postgres.ExtractDBColumns[supplier.Supplier](),
			func() *supplier.Supplier { return &supplier.Supplier{} },
		),
	}
}
