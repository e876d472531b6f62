package reports

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockpile/internal/core/id"
	"stockpile/internal/domain"
	"stockpile/internal/domain/stock"
	"stockpile/internal/domain/transactions/purchase"
	"stockpile/internal/domain/transactions/sale"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fakeStockLister struct {
	items []*stock.Stock
}

func (f *fakeStockLister) List(_ context.Context, _ domain.ListFilter) (domain.ListResult[*stock.Stock], error) {
	return domain.ListResult[*stock.Stock]{Items: f.items, TotalCount: int64(len(f.items))}, nil
}

type fakePurchaseLister struct {
	items []*purchase.Item
}

func (f *fakePurchaseLister) List(_ context.Context, filter purchase.ListFilter) (purchase.ListResult, error) {
	items := f.items
	if filter.StockID != nil {
		items = nil
		for _, it := range f.items {
			if it.StockID == *filter.StockID {
				items = append(items, it)
			}
		}
	}
	return purchase.ListResult{Items: items, TotalCount: int64(len(items))}, nil
}

type fakeSaleLister struct {
	items []*sale.Item
}

func (f *fakeSaleLister) List(_ context.Context, filter sale.ListFilter) (sale.ListResult, error) {
	items := f.items
	if filter.StockID != nil {
		items = nil
		for _, it := range f.items {
			if it.StockID == *filter.StockID {
				items = append(items, it)
			}
		}
	}
	return sale.ListResult{Items: items, TotalCount: int64(len(items))}, nil
}

func TestService_StockBalances(t *testing.T) {
	warehouse := stock.New("Warehouse")
	warehouse.Quantity = d("42.50")
	shop := stock.New("Shop")
	shop.Quantity = d("-3")

	svc := NewService(&fakeStockLister{items: []*stock.Stock{shop, warehouse}}, &fakePurchaseLister{}, &fakeSaleLister{})

	balances, err := svc.StockBalances(context.Background())
	require.NoError(t, err)
	require.Len(t, balances, 2)

	assert.Equal(t, shop.ID, balances[0].StockID)
	assert.True(t, balances[0].Quantity.Equal(d("-3")))
	assert.Equal(t, "Warehouse", balances[1].Name)
	assert.True(t, balances[1].Quantity.Equal(d("42.50")))
}

func TestService_Journal_MergesNewestFirst(t *testing.T) {
	stockID := id.New()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	p := &purchase.Item{
		ID: id.New(), StockID: stockID,
		Quantity: d("10"), UnitPrice: d("2"), TotalPrice: d("20"),
		Date: base,
	}
	s := &sale.Item{
		ID: id.New(), StockID: stockID,
		Quantity: d("4"), UnitPrice: d("3"), Discount: d("25"), TotalPrice: d("9"),
		Date: base.Add(time.Hour),
	}

	svc := NewService(&fakeStockLister{},
		&fakePurchaseLister{items: []*purchase.Item{p}},
		&fakeSaleLister{items: []*sale.Item{s}})

	entries, err := svc.Journal(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, EntrySale, entries[0].Type)
	assert.Equal(t, s.ID, entries[0].ID)
	require.NotNil(t, entries[0].Discount)
	assert.True(t, entries[0].Discount.Equal(d("25")))

	assert.Equal(t, EntryPurchase, entries[1].Type)
	assert.Nil(t, entries[1].Discount)
}

func TestService_Journal_FiltersByStock(t *testing.T) {
	first := id.New()
	second := id.New()

	svc := NewService(&fakeStockLister{},
		&fakePurchaseLister{items: []*purchase.Item{
			{ID: id.New(), StockID: first, Quantity: d("1"), UnitPrice: d("1"), TotalPrice: d("1"), Date: time.Now()},
			{ID: id.New(), StockID: second, Quantity: d("1"), UnitPrice: d("1"), TotalPrice: d("1"), Date: time.Now()},
		}},
		&fakeSaleLister{})

	entries, err := svc.Journal(context.Background(), &first)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, first, entries[0].StockID)
}
