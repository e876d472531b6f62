// Package v1 assembles the v1 HTTP API.
package v1

import (
	"github.com/gin-gonic/gin"

	"stockpile/internal/infrastructure/http/v1/handlers"
	"stockpile/internal/infrastructure/http/v1/middleware"
	"stockpile/pkg/logger"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health     *handlers.HealthHandler
	Categories *handlers.CategoryHandler
	Products   *handlers.ProductHandler
	Suppliers  *handlers.SupplierHandler
	Stocks     *handlers.StockHandler
	Purchases  *handlers.PurchaseHandler
	Sales      *handlers.SaleHandler
	Reports    *handlers.ReportsHandler
}

// NewRouter builds the gin engine with the standard middleware chain and all
// v1 routes mounted under /api/v1.
func NewRouter(log *logger.Logger, h Handlers) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Trace())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery())
	router.Use(middleware.ErrorHandler())

	health := router.Group("/health")
	{
		health.GET("/live", h.Health.Live)
		health.GET("/ready", h.Health.Ready)
		health.GET("/info", h.Health.Info)
	}

	api := router.Group("/api/v1")
	{
		h.Categories.RegisterRoutes(api.Group("/categories"))
		h.Products.RegisterRoutes(api.Group("/products"))
		h.Suppliers.RegisterRoutes(api.Group("/suppliers"))
		h.Stocks.RegisterRoutes(api.Group("/stocks"))
		h.Purchases.RegisterRoutes(api.Group("/purchases"))
		h.Sales.RegisterRoutes(api.Group("/sales"))
		h.Reports.RegisterRoutes(api.Group("/reports"))
	}

	return router
}
