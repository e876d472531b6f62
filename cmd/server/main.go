// Command server runs the stockpile HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"stockpile/internal/domain/catalogs/category"
	"stockpile/internal/domain/catalogs/product"
	"stockpile/internal/domain/catalogs/supplier"
	"stockpile/internal/domain/pricing"
	"stockpile/internal/domain/reports"
	"stockpile/internal/domain/stock"
	"stockpile/internal/domain/transactions/purchase"
	"stockpile/internal/domain/transactions/sale"
	v1 "stockpile/internal/infrastructure/http/v1"
	"stockpile/internal/infrastructure/http/v1/handlers"
	"stockpile/internal/infrastructure/storage/postgres"
	"stockpile/internal/infrastructure/storage/postgres/catalog_repo"
	"stockpile/internal/infrastructure/storage/postgres/stock_repo"
	"stockpile/internal/infrastructure/storage/postgres/transaction_repo"
	"stockpile/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// .env is optional, env vars win.
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "production") == "development",
	})
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx = logger.WithLogger(ctx, log)

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

	// Repositories.
	categoryRepo := catalog_repo.NewCategoryRepo(txManager)
	productRepo := catalog_repo.NewProductRepo(txManager)
	supplierRepo := catalog_repo.NewSupplierRepo(txManager)
	stockRepo := stock_repo.NewStockRepo(txManager)
	purchaseRepo := transaction_repo.NewPurchaseRepo(txManager)
	saleRepo := transaction_repo.NewSaleRepo(txManager)

	// Services.
	calc := pricing.NewCalculator()
	categorySvc := category.NewService(categoryRepo, txManager)
	productSvc := product.NewService(productRepo, txManager, categorySvc)
	supplierSvc := supplier.NewService(supplierRepo, txManager)
	stockSvc := stock.NewService(stockRepo, txManager)
	purchaseSvc := purchase.NewService(purchaseRepo, stockRepo, supplierSvc, calc, txManager)
	saleSvc := sale.NewService(saleRepo, stockRepo, calc, txManager)
	reportsSvc := reports.NewService(stockRepo, purchaseRepo, saleRepo)

	// HTTP layer.
	base := handlers.NewBaseHandler()
	router := v1.NewRouter(log, v1.Handlers{
		Health:     handlers.NewHealthHandler(pool),
		Categories: handlers.NewCategoryHandler(base, categorySvc),
		Products:   handlers.NewProductHandler(base, productSvc),
		Suppliers:  handlers.NewSupplierHandler(base, supplierSvc),
		Stocks:     handlers.NewStockHandler(base, stockSvc),
		Purchases:  handlers.NewPurchaseHandler(base, purchaseSvc),
		Sales:      handlers.NewSaleHandler(base, saleSvc),
		Reports:    handlers.NewReportsHandler(base, reportsSvc),
	})

	addr := getEnv("HTTP_ADDR", ":8080")
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infow("http server starting", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("http server failed", "error", err)
		}
	}()

	<-ctx.Done()
	log.Infow("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("graceful shutdown failed", "error", err)
	}
	log.Infow("server stopped")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
