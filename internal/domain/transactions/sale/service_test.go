package sale

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

type fakeSaleRepo struct {
	mu    sync.Mutex
	items map[id.ID]*Item
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{items: make(map[id.ID]*Item)}
}

func (r *fakeSaleRepo) Create(_ context.Context, item *Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeSaleRepo) GetByID(_ context.Context, itemID id.ID) (*Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[itemID]
	if !ok {
		return nil, apperror.NewNotFound("sale", itemID.String())
	}
	copied := *item
	return &copied, nil
}

func (r *fakeSaleRepo) Update(_ context.Context, item *Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return apperror.NewNotFound("sale", item.ID.String())
	}
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeSaleRepo) Delete(_ context.Context, itemID id.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, itemID)
	return nil
}

func (r *fakeSaleRepo) List(_ context.Context, _ ListFilter) (ListResult, error) {
	return ListResult{}, nil
}

func newService(stocks *fakeStockRepo, repo *fakeSaleRepo) *Service {
	return NewService(repo, stocks, pricing.NewCalculator(), &fakeTxManager{})
}

func testStock(quantity string) *stock.Stock {
	s := stock.New("main warehouse")
	s.Quantity = d(quantity)
	return s
}

func TestService_Create_DecreasesStock(t *testing.T) {
	st := testStock("10")
	stocks := newFakeStockRepo(st)
	repo := newFakeSaleRepo()
	svc := newService(stocks, repo)

	item := &Item{StockID: st.ID, Quantity: d("4"), UnitPrice: d("25"), Discount: d("10")}
	require.NoError(t, svc.Create(context.Background(), item))

	assert.True(t, d("6").Equal(stocks.quantity(t, st.ID)))
	// 4 * 25 * 0.9
	assert.True(t, d("90").Equal(item.TotalPrice))
}

func TestService_Create_ExactBalanceAllowed(t *testing.T) {
	st := testStock("10")
	stocks := newFakeStockRepo(st)
	svc := newService(stocks, newFakeSaleRepo())

	item := &Item{StockID: st.ID, Quantity: d("10"), UnitPrice: d("1")}
	require.NoError(t, svc.Create(context.Background(), item))
	assert.True(t, stocks.quantity(t, st.ID).IsZero())
}

func TestService_Create_InsufficientStock(t *testing.T) {
	st := testStock("10")
	stocks := newFakeStockRepo(st)
	svc := newService(stocks, newFakeSaleRepo())

	item := &Item{StockID: st.ID, Quantity: d("10.01"), UnitPrice: d("1")}
	err := svc.Create(context.Background(), item)
	require.Error(t, err)
	assert.True(t, apperror.IsInsufficientStock(err))

	// Balance untouched.
	assert.True(t, d("10").Equal(stocks.quantity(t, st.ID)))
}

func TestService_Create_RejectsBadDiscount(t *testing.T) {
	st := testStock("10")
	svc := newService(newFakeStockRepo(st), newFakeSaleRepo())

	for _, disc := range []string{"-1", "100.5"} {
		err := svc.Create(context.Background(), &Item{StockID: st.ID, Quantity: d("1"), UnitPrice: d("1"), Discount: d(disc)})
		require.Error(t, err, "discount %s", disc)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeValidation, appErr.Code)
	}
}

func TestService_Update_GiveBackThenTake(t *testing.T) {
	st := testStock("10")
	stocks := newFakeStockRepo(st)
	repo := newFakeSaleRepo()
	svc := newService(stocks, repo)

	item := &Item{StockID: st.ID, Quantity: d("6"), UnitPrice: d("5")}
	require.NoError(t, svc.Create(context.Background(), item))
	require.True(t, d("4").Equal(stocks.quantity(t, st.ID)))

	// 4 on hand is not enough for 9 alone, but the restored balance
	// (4 + 6 = 10) covers it.
	item.Quantity = d("9")
	require.NoError(t, svc.Update(context.Background(), item))
	assert.True(t, d("1").Equal(stocks.quantity(t, st.ID)))
}

func TestService_Update_InsufficientAgainstRestoredBalance(t *testing.T) {
	st := testStock("10")
	stocks := newFakeStockRepo(st)
	repo := newFakeSaleRepo()
	svc := newService(stocks, repo)

	item := &Item{StockID: st.ID, Quantity: d("6"), UnitPrice: d("5")}
	require.NoError(t, svc.Create(context.Background(), item))

	item.Quantity = d("11")
	err := svc.Update(context.Background(), item)
	require.Error(t, err)
	assert.True(t, apperror.IsInsufficientStock(err))
}

func TestService_Update_RecomputesTotal(t *testing.T) {
	st := testStock("100")
	stocks := newFakeStockRepo(st)
	repo := newFakeSaleRepo()
	svc := newService(stocks, repo)

	item := &Item{StockID: st.ID, Quantity: d("2"), UnitPrice: d("50"), Discount: d("0")}
	require.NoError(t, svc.Create(context.Background(), item))

	item.Discount = d("25")
	// Client-supplied totals are ignored.
	item.TotalPrice = d("999")
	require.NoError(t, svc.Update(context.Background(), item))

	stored, err := repo.GetByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.True(t, d("75").Equal(stored.TotalPrice))
}

func TestService_Delete_ReturnsQuantity(t *testing.T) {
	st := testStock("10")
	stocks := newFakeStockRepo(st)
	repo := newFakeSaleRepo()
	svc := newService(stocks, repo)

	item := &Item{StockID: st.ID, Quantity: d("4"), UnitPrice: d("1")}
	require.NoError(t, svc.Create(context.Background(), item))
	require.True(t, d("6").Equal(stocks.quantity(t, st.ID)))

	require.NoError(t, svc.Delete(context.Background(), item.ID))
	assert.True(t, d("10").Equal(stocks.quantity(t, st.ID)))
}

func TestService_Create_ConcurrentSalesSerialize(t *testing.T) {
	// Balance 10, two concurrent sales of 6: exactly one must pass the
	// sufficiency check because both run under the same lock.
	st := testStock("10")
	stocks := newFakeStockRepo(st)
	repo := newFakeSaleRepo()
	svc := newService(stocks, repo)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = svc.Create(context.Background(), &Item{
				StockID: st.ID, Quantity: d("6"), UnitPrice: d("1"),
			})
		}(i)
	}
	wg.Wait()

	var ok, insufficient int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case apperror.IsInsufficientStock(err):
			insufficient++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, insufficient)
	assert.True(t, d("4").Equal(stocks.quantity(t, st.ID)))
}
