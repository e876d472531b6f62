// Command seed loads a small demo dataset through the domain services so
// every ledger write goes through the same reconciliation path as the API.
package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"stockpile/internal/domain/catalogs/category"
	"stockpile/internal/domain/catalogs/product"
	"stockpile/internal/domain/catalogs/supplier"
	"stockpile/internal/domain/pricing"
	"stockpile/internal/domain/stock"
	"stockpile/internal/domain/transactions/purchase"
	"stockpile/internal/domain/transactions/sale"
	"stockpile/internal/infrastructure/storage/postgres"
	"stockpile/internal/infrastructure/storage/postgres/catalog_repo"
	"stockpile/internal/infrastructure/storage/postgres/stock_repo"
	"stockpile/internal/infrastructure/storage/postgres/transaction_repo"
	"stockpile/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	log := logger.Default()
	ctx := logger.WithLogger(context.Background(), log)

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatalw("DATABASE_URL is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dsn))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	stockRepo := stock_repo.NewStockRepo(txManager)
	supplierRepo := catalog_repo.NewSupplierRepo(txManager)
	categoryRepo := catalog_repo.NewCategoryRepo(txManager)
	productRepo := catalog_repo.NewProductRepo(txManager)

	calc := pricing.NewCalculator()
	categorySvc := category.NewService(categoryRepo, txManager)
	productSvc := product.NewService(productRepo, txManager, categorySvc)
	supplierSvc := supplier.NewService(supplierRepo, txManager)
	stockSvc := stock.NewService(stockRepo, txManager)
	purchaseSvc := purchase.NewService(transaction_repo.NewPurchaseRepo(txManager), stockRepo, supplierSvc, calc, txManager)
	saleSvc := sale.NewService(transaction_repo.NewSaleRepo(txManager), stockRepo, calc, txManager)

	beverages := category.New("Beverages")
	snacks := category.New("Snacks")
	for _, c := range []*category.Category{beverages, snacks} {
		if err := categorySvc.Create(ctx, c); err != nil {
			log.Fatalw("seed category failed", "name", c.Name, "error", err)
		}
	}

	coffee := product.New("Arabica Coffee 1kg", d("18.50"))
	coffee.CategoryID = &beverages.ID
	crackers := product.New("Rye Crackers 200g", d("2.30"))
	crackers.CategoryID = &snacks.ID
	for _, p := range []*product.Product{coffee, crackers} {
		if err := productSvc.Create(ctx, p); err != nil {
			log.Fatalw("seed product failed", "name", p.Name, "error", err)
		}
	}

	acme := supplier.New("Acme Wholesale")
	acme.Email = ptr("orders@acme-wholesale.example")
	acme.Phone = ptr("+1-555-0134")
	if err := supplierSvc.Create(ctx, acme); err != nil {
		log.Fatalw("seed supplier failed", "name", acme.Name, "error", err)
	}

	mainWarehouse := stock.New("Main Warehouse")
	storefront := stock.New("Storefront")
	for _, s := range []*stock.Stock{mainWarehouse, storefront} {
		if err := stockSvc.Create(ctx, s); err != nil {
			log.Fatalw("seed stock failed", "name", s.Name, "error", err)
		}
	}

	now := time.Now().UTC()
	purchases := []*purchase.Item{
		{StockID: mainWarehouse.ID, SupplierID: &acme.ID, Quantity: d("120"), UnitPrice: d("15.80"), Date: now.AddDate(0, 0, -14)},
		{StockID: mainWarehouse.ID, SupplierID: &acme.ID, Quantity: d("40"), UnitPrice: d("16.10"), Date: now.AddDate(0, 0, -7)},
		{StockID: storefront.ID, Quantity: d("25"), UnitPrice: d("2.05"), Date: now.AddDate(0, 0, -5)},
	}
	for _, p := range purchases {
		if err := purchaseSvc.Create(ctx, p); err != nil {
			log.Fatalw("seed purchase failed", "error", err)
		}
	}

	sales := []*sale.Item{
		{StockID: mainWarehouse.ID, Quantity: d("30"), UnitPrice: d("18.50"), Discount: d("0"), Date: now.AddDate(0, 0, -3)},
		{StockID: mainWarehouse.ID, Quantity: d("12"), UnitPrice: d("18.50"), Discount: d("10"), Date: now.AddDate(0, 0, -1)},
		{StockID: storefront.ID, Quantity: d("8"), UnitPrice: d("2.30"), Discount: d("0"), Date: now},
	}
	for _, s := range sales {
		if err := saleSvc.Create(ctx, s); err != nil {
			log.Fatalw("seed sale failed", "error", err)
		}
	}

	log.Infow("seed complete",
		"categories", 2, "products", 2, "suppliers", 1,
		"stocks", 2, "purchases", len(purchases), "sales", len(sales))
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr(s string) *string { return &s }
