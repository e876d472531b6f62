package catalog_repo

import (
	"stockpile/internal/domain"
	"stockpile/internal/domain/catalogs/product"
	"stockpile/internal/infrastructure/storage/postgres"
)

// Compile-time interface check.
var _ domain.CatalogRepository[*product.Product] = (*ProductRepo)(nil)

// ProductRepo persists products.
type ProductRepo struct {
	*BaseCatalogRepo[*product.Product]
}

// NewProductRepo creates a product repository.
func NewProductRepo(txManager *postgres.TxManager) *ProductRepo {
	return &ProductRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			"products",
			postgres.ExtractDBColumns[product.Product](),
			func() *product.Product { return &product.Product{} },
		),
	}
}
