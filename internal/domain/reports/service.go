// Package reports builds read-only summaries over the stock ledger and the
// transaction logs.
package reports

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"stockpile/internal/core/id"
	"stockpile/internal/domain"
	"stockpile/internal/domain/stock"
	"stockpile/internal/domain/transactions/purchase"
	"stockpile/internal/domain/transactions/sale"
)

// EntryType distinguishes journal rows.
type EntryType string

const (
	EntryPurchase EntryType = "purchase"
	EntrySale     EntryType = "sale"
)

// StockBalance is one row of the balance summary.
type StockBalance struct {
	StockID  id.ID           `json:"stockId"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
}

// JournalEntry is one merged transaction-log row, newest first.
type JournalEntry struct {
	Type       EntryType        `json:"type"`
	ID         id.ID            `json:"id"`
	StockID    id.ID            `json:"stockId"`
	Quantity   decimal.Decimal  `json:"quantity"`
	UnitPrice  decimal.Decimal  `json:"unitPrice"`
	Discount   *decimal.Decimal `json:"discount,omitempty"`
	TotalPrice decimal.Decimal  `json:"totalPrice"`
	Date       time.Time        `json:"date"`
}

// StockLister lists stock ledger rows.
type StockLister interface {
	List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*stock.Stock], error)
}

// PurchaseLister lists purchase transactions.
type PurchaseLister interface {
	List(ctx context.Context, filter purchase.ListFilter) (purchase.ListResult, error)
}

// SaleLister lists sale transactions.
type SaleLister interface {
	List(ctx context.Context, filter sale.ListFilter) (sale.ListResult, error)
}

// Service assembles reports from the repositories.
type Service struct {
	stocks    StockLister
	purchases PurchaseLister
	sales     SaleLister
}

// NewService creates a reports service.
func NewService(stocks StockLister, purchases PurchaseLister, sales SaleLister) *Service {
	return &Service{
		stocks:    stocks,
		purchases: purchases,
		sales:     sales,
	}
}

const maxReportRows = 10000

// StockBalances returns the current balance of every stock, ordered by name.
func (s *Service) StockBalances(ctx context.Context) ([]StockBalance, error) {
	result, err := s.stocks.List(ctx, domain.ListFilter{OrderBy: "name", Limit: maxReportRows})
	if err != nil {
		return nil, err
	}

	balances := make([]StockBalance, 0, len(result.Items))
	for _, st := range result.Items {
		balances = append(balances, StockBalance{
			StockID:  st.ID,
			Name:     st.Name,
			Quantity: st.Quantity,
		})
	}
	return balances, nil
}

// Journal merges purchases and sales into one chronological log, newest
// first, optionally restricted to one stock.
func (s *Service) Journal(ctx context.Context, stockID *id.ID) ([]JournalEntry, error) {
	purchases, err := s.purchases.List(ctx, purchase.ListFilter{StockID: stockID, Limit: maxReportRows})
	if err != nil {
		return nil, err
	}
	sales, err := s.sales.List(ctx, sale.ListFilter{StockID: stockID, Limit: maxReportRows})
	if err != nil {
		return nil, err
	}

	entries := make([]JournalEntry, 0, len(purchases.Items)+len(sales.Items))
	for _, p := range purchases.Items {
		entries = append(entries, JournalEntry{
			Type:       EntryPurchase,
			ID:         p.ID,
			StockID:    p.StockID,
			Quantity:   p.Quantity,
			UnitPrice:  p.UnitPrice,
			TotalPrice: p.TotalPrice,
			Date:       p.Date,
		})
	}
	for _, sl := range sales.Items {
		discount := sl.Discount
		entries = append(entries, JournalEntry{
			Type:       EntrySale,
			ID:         sl.ID,
			StockID:    sl.StockID,
			Quantity:   sl.Quantity,
			UnitPrice:  sl.UnitPrice,
			Discount:   &discount,
			TotalPrice: sl.TotalPrice,
			Date:       sl.Date,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries, nil
}
