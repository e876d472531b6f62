package handlers

import (
	"encoding/csv"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzip"

	"stockpile/internal/core/apperror"
	"stockpile/internal/core/id"
	"stockpile/internal/domain/reports"
	"stockpile/pkg/logger"
)

// ReportsHandler serves read-only summaries over the ledger.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service) *ReportsHandler {
	return &ReportsHandler{BaseHandler: base, service: service}
}

// StockBalances handles GET /reports/stock-balances.
func (h *ReportsHandler) StockBalances(c *gin.Context) {
	balances, err := h.service.StockBalances(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, gin.H{"items": balances, "totalCount": len(balances)})
}

// Journal handles GET /reports/transactions.
func (h *ReportsHandler) Journal(c *gin.Context) {
	stockID, ok := h.stockIDQuery(c)
	if !ok {
		return
	}

	entries, err := h.service.Journal(c.Request.Context(), stockID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, gin.H{"items": entries, "totalCount": len(entries)})
}

// ExportJournal handles GET /reports/transactions/export. The journal is
// streamed as a gzip-compressed CSV attachment.
func (h *ReportsHandler) ExportJournal(c *gin.Context) {
	stockID, ok := h.stockIDQuery(c)
	if !ok {
		return
	}

	entries, err := h.service.Journal(c.Request.Context(), stockID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Encoding", "gzip")
	c.Header("Content-Disposition", `attachment; filename="transactions.csv.gz"`)
	c.Status(http.StatusOK)

	gz := gzip.NewWriter(c.Writer)
	w := csv.NewWriter(gz)

	_ = w.Write([]string{"type", "id", "stock_id", "quantity", "unit_price", "discount", "total_price", "date"})
	for _, e := range entries {
		discount := ""
		if e.Discount != nil {
			discount = e.Discount.String()
		}
		_ = w.Write([]string{
			string(e.Type),
			e.ID.String(),
			e.StockID.String(),
			e.Quantity.String(),
			e.UnitPrice.String(),
			discount,
			e.TotalPrice.String(),
			e.Date.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		logger.Error(c.Request.Context(), "csv export write failed", "error", err)
	}
	if err := gz.Close(); err != nil {
		logger.Error(c.Request.Context(), "csv export gzip close failed", "error", err)
	}
}

func (h *ReportsHandler) stockIDQuery(c *gin.Context) (*id.ID, bool) {
	raw := c.Query("stockId")
	if raw == "" {
		return nil, true
	}
	parsed, err := id.Parse(raw)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid stockId format"))
		return nil, false
	}
	return &parsed, true
}

// RegisterRoutes registers report routes.
func (h *ReportsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/stock-balances", h.StockBalances)
	rg.GET("/transactions", h.Journal)
	rg.GET("/transactions/export", h.ExportJournal)
}
