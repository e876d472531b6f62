package purchase

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockpile/internal/core/apperror"
	"stockpile/internal/core/id"
	"stockpile/internal/domain"
	"stockpile/internal/domain/pricing"
	"stockpile/internal/domain/stock"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// fakeTxManager serializes transactional sections with a mutex, standing in
// for the row lock the real implementation takes.
type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

func (m *fakeTxManager) RunInTransactionWithRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.RunInTransaction(ctx, fn)
}

type fakeStockRepo struct {
	mu     sync.Mutex
	stocks map[id.ID]*stock.Stock
}

func newFakeStockRepo(stocks ...*stock.Stock) *fakeStockRepo {
	r := &fakeStockRepo{stocks: make(map[id.ID]*stock.Stock)}
	for _, s := range stocks {
		r.stocks[s.ID] = s
	}
	return r
}

func (r *fakeStockRepo) Create(_ context.Context, s *stock.Stock) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stocks[s.ID] = s
	return nil
}

func (r *fakeStockRepo) GetByID(_ context.Context, stockID id.ID) (*stock.Stock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.stocks[stockID]
	if !ok {
		return nil, apperror.NewNotFound("stock", stockID.String())
	}
	copied := *s
	return &copied, nil
}

func (r *fakeStockRepo) GetForUpdate(ctx context.Context, stockID id.ID) (*stock.Stock, error) {
	return r.GetByID(ctx, stockID)
}

func (r *fakeStockRepo) Update(_ context.Context, s *stock.Stock) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stocks[s.ID] = s
	return nil
}

func (r *fakeStockRepo) Delete(_ context.Context, stockID id.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.stocks, stockID)
	return nil
}

func (r *fakeStockRepo) List(_ context.Context, _ domain.ListFilter) (domain.ListResult[*stock.Stock], error) {
	return domain.ListResult[*stock.Stock]{}, nil
}

func (r *fakeStockRepo) Exists(_ context.Context, stockID id.ID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.stocks[stockID]
	return ok, nil
}

func (r *fakeStockRepo) ApplyDelta(_ context.Context, stockID id.ID, delta decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.stocks[stockID]
	if !ok {
		return apperror.NewNotFound("stock", stockID.String())
	}
	s.Quantity = s.Quantity.Add(delta)
	return nil
}

func (r *fakeStockRepo) quantity(t *testing.T, stockID id.ID) decimal.Decimal {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.stocks[stockID]
	require.True(t, ok)
	return s.Quantity
}

type fakePurchaseRepo struct {
	mu    sync.Mutex
	items map[id.ID]*Item
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{items: make(map[id.ID]*Item)}
}

func (r *fakePurchaseRepo) Create(_ context.Context, item *Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakePurchaseRepo) GetByID(_ context.Context, itemID id.ID) (*Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[itemID]
	if !ok {
		return nil, apperror.NewNotFound("purchase", itemID.String())
	}
	copied := *item
	return &copied, nil
}

func (r *fakePurchaseRepo) Update(_ context.Context, item *Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return apperror.NewNotFound("purchase", item.ID.String())
	}
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakePurchaseRepo) Delete(_ context.Context, itemID id.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, itemID)
	return nil
}

func (r *fakePurchaseRepo) List(_ context.Context, _ ListFilter) (ListResult, error) {
	return ListResult{}, nil
}

type fakeSupplierChecker struct {
	ids map[id.ID]bool
}

func (c *fakeSupplierChecker) Exists(_ context.Context, supplierID id.ID) (bool, error) {
	return c.ids[supplierID], nil
}

func newService(stocks *fakeStockRepo, repo *fakePurchaseRepo, suppliers *fakeSupplierChecker) *Service {
	if suppliers == nil {
		suppliers = &fakeSupplierChecker{ids: map[id.ID]bool{}}
	}
	return NewService(repo, stocks, suppliers, pricing.NewCalculator(), &fakeTxManager{})
}

func testStock(quantity string) *stock.Stock {
	s := stock.New("main warehouse")
	s.Quantity = d(quantity)
	return s
}

func TestService_Create_IncreasesStock(t *testing.T) {
	st := testStock("10")
	stocks := newFakeStockRepo(st)
	repo := newFakePurchaseRepo()
	svc := newService(stocks, repo, nil)

	item := &Item{StockID: st.ID, Quantity: d("4"), UnitPrice: d("2.50")}
	require.NoError(t, svc.Create(context.Background(), item))

	assert.True(t, d("14").Equal(stocks.quantity(t, st.ID)))
	assert.True(t, d("10").Equal(item.TotalPrice))
	assert.False(t, id.IsNil(item.ID))
}

func TestService_Create_UnknownStock(t *testing.T) {
	stocks := newFakeStockRepo()
	svc := newService(stocks, newFakePurchaseRepo(), nil)

	err := svc.Create(context.Background(), &Item{StockID: id.New(), Quantity: d("1"), UnitPrice: d("1")})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestService_Create_UnknownSupplier(t *testing.T) {
	st := testStock("0")
	stocks := newFakeStockRepo(st)
	svc := newService(stocks, newFakePurchaseRepo(), &fakeSupplierChecker{ids: map[id.ID]bool{}})

	missing := id.New()
	err := svc.Create(context.Background(), &Item{StockID: st.ID, SupplierID: &missing, Quantity: d("1"), UnitPrice: d("1")})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	// Nothing was applied to the ledger.
	assert.True(t, d("0").Equal(stocks.quantity(t, st.ID)))
}

func TestService_Create_RejectsNonPositiveQuantity(t *testing.T) {
	st := testStock("0")
	svc := newService(newFakeStockRepo(st), newFakePurchaseRepo(), nil)

	for _, qty := range []string{"0", "-3"} {
		err := svc.Create(context.Background(), &Item{StockID: st.ID, Quantity: d(qty), UnitPrice: d("1")})
		require.Error(t, err, "quantity %s", qty)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeValidation, appErr.Code)
	}
}

func TestService_Update_RevertsThenReapplies(t *testing.T) {
	st := testStock("10")
	stocks := newFakeStockRepo(st)
	repo := newFakePurchaseRepo()
	svc := newService(stocks, repo, nil)

	item := &Item{StockID: st.ID, Quantity: d("4"), UnitPrice: d("2")}
	require.NoError(t, svc.Create(context.Background(), item))
	require.True(t, d("14").Equal(stocks.quantity(t, st.ID)))

	item.Quantity = d("7")
	item.UnitPrice = d("3")
	require.NoError(t, svc.Update(context.Background(), item))

	// 14 - 4 + 7
	assert.True(t, d("17").Equal(stocks.quantity(t, st.ID)))

	stored, err := repo.GetByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.True(t, d("21").Equal(stored.TotalPrice))
}

func TestService_Update_MovedToAnotherStock(t *testing.T) {
	oldStock := testStock("10")
	newStock := testStock("5")
	stocks := newFakeStockRepo(oldStock, newStock)
	repo := newFakePurchaseRepo()
	svc := newService(stocks, repo, nil)

	item := &Item{StockID: oldStock.ID, Quantity: d("4"), UnitPrice: d("1")}
	require.NoError(t, svc.Create(context.Background(), item))
	require.True(t, d("14").Equal(stocks.quantity(t, oldStock.ID)))

	item.StockID = newStock.ID
	require.NoError(t, svc.Update(context.Background(), item))

	// Both the revert and the reapply land on the newly referenced stock.
	assert.True(t, d("14").Equal(stocks.quantity(t, oldStock.ID)))
	assert.True(t, d("5").Equal(stocks.quantity(t, newStock.ID)))
}

func TestService_Delete_RevertsStock(t *testing.T) {
	st := testStock("10")
	stocks := newFakeStockRepo(st)
	repo := newFakePurchaseRepo()
	svc := newService(stocks, repo, nil)

	item := &Item{StockID: st.ID, Quantity: d("4"), UnitPrice: d("1")}
	require.NoError(t, svc.Create(context.Background(), item))

	require.NoError(t, svc.Delete(context.Background(), item.ID))
	assert.True(t, d("10").Equal(stocks.quantity(t, st.ID)))

	_, err := svc.GetByID(context.Background(), item.ID)
	assert.True(t, apperror.IsNotFound(err))
}

func TestService_Delete_AllowsNegativeStock(t *testing.T) {
	// Purchase 10, balance drops to 3 through other activity, then the
	// purchase is deleted: the ledger goes to -7 with no floor check.
	st := testStock("0")
	stocks := newFakeStockRepo(st)
	repo := newFakePurchaseRepo()
	svc := newService(stocks, repo, nil)

	item := &Item{StockID: st.ID, Quantity: d("10"), UnitPrice: d("1")}
	require.NoError(t, svc.Create(context.Background(), item))

	require.NoError(t, stocks.ApplyDelta(context.Background(), st.ID, d("-7")))
	require.True(t, d("3").Equal(stocks.quantity(t, st.ID)))

	require.NoError(t, svc.Delete(context.Background(), item.ID))
	assert.True(t, d("-7").Equal(stocks.quantity(t, st.ID)))
}
