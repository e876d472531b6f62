package catalog_repo

import (
	"stockpile/internal/domain"
	"stockpile/internal/domain/catalogs/category"
	"stockpile/internal/infrastructure/storage/postgres"
)

// Compile-time interface check.
var _ domain.CatalogRepository[*category.Category] = (*CategoryRepo)(nil)

// CategoryRepo persists categories.
type CategoryRepo struct {
	*BaseCatalogRepo[*category.Category]
}

// NewCategoryRepo creates a category repository.
func NewCategoryRepo(txManager *postgres.TxManager) *CategoryRepo {
	return &CategoryRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txManager,
			"categories",
			postgres.ExtractDBColumns[category.Category](),
			func() *category.Category { return &category.Category{} },
		),
	}
}
