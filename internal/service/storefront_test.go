package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shopview/dashboard/internal/domain"
)

type mockStorefrontAPI struct {
	mock.Mock
}

func (m *mockStorefrontAPI) ListAllProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *mockStorefrontAPI) CartCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockStorefrontAPI) OrderCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockStorefrontAPI) Authenticated() bool {
	return m.Called().Bool(0)
}

func newTestStorefront(t *testing.T, storeAPI *mockStorefrontAPI) (*Storefront, *mockWishlistAPI, *mockReviewAPI) {
	t.Helper()
	log := newTestLogger()
	wishlistAPI := new(mockWishlistAPI)
	reviewAPI := new(mockReviewAPI)
	wishlist := NewWishlistService(wishlistAPI, log)
	reviews := NewReviewService(reviewAPI, log)
	return NewStorefront(storeAPI, wishlist, reviews, log), wishlistAPI, reviewAPI
}

func TestStorefrontLoad_SignedIn(t *testing.T) {
	storeAPI := new(mockStorefrontAPI)
	sf, wishlistAPI, reviewAPI := newTestStorefront(t, storeAPI)
	ctx := context.Background()

	products := []domain.Product{
		{ID: "p1", Name: "Desk Lamp", CategoryName: "Home", Stock: 3},
		{ID: "p2", Name: "Notebook", CategoryName: "Office", Stock: 10},
	}
	storeAPI.On("ListAllProducts", ctx).Return(products, nil)
	storeAPI.On("Authenticated").Return(true)
	storeAPI.On("CartCount", ctx).Return(4, nil)
	storeAPI.On("OrderCount", ctx).Return(2, nil)
	wishlistAPI.On("Authenticated").Return(true)
	wishlistAPI.On("WishlistStatus", ctx, []string{"p1", "p2"}).
		Return(map[string]bool{"p1": true}, nil)
	reviewAPI.On("ReviewsByProduct", ctx, "p1").Return([]domain.Review{{Rating: 4}}, nil)
	reviewAPI.On("ReviewsByProduct", ctx, "p2").Return([]domain.Review{}, nil)

	require.NoError(t, sf.Load(ctx))

	snap := sf.Snapshot()
	assert.Equal(t, LoadReady, snap.State)
	assert.NoError(t, snap.Err)
	assert.Len(t, snap.Products, 2)
	assert.Len(t, snap.FilteredProducts, 2)
	assert.Equal(t, []string{CategoryAll, "Home", "Office"}, snap.Categories)
	assert.Equal(t, []string{"p1"}, snap.WishlistedIDs)
	assert.Equal(t, 4.0, snap.ReviewStats["p1"].Average)
	assert.Equal(t, 4, snap.CartCount)
	assert.Equal(t, 2, snap.OrderCount)
}

func TestStorefrontLoad_CatalogFailure(t *testing.T) {
	storeAPI := new(mockStorefrontAPI)
	sf, _, _ := newTestStorefront(t, storeAPI)
	ctx := context.Background()

	storeAPI.On("ListAllProducts", ctx).Return(nil, errors.New("server error"))

	require.Error(t, sf.Load(ctx))

	snap := sf.Snapshot()
	assert.Equal(t, LoadFailed, snap.State)
	assert.Error(t, snap.Err)
	assert.Empty(t, snap.Products)
}

func TestStorefrontLoad_WishlistFailureIsIsolated(t *testing.T) {
	storeAPI := new(mockStorefrontAPI)
	sf, wishlistAPI, reviewAPI := newTestStorefront(t, storeAPI)
	ctx := context.Background()

	storeAPI.On("ListAllProducts", ctx).Return([]domain.Product{{ID: "p1", Name: "Desk Lamp"}}, nil)
	storeAPI.On("Authenticated").Return(false)
	wishlistAPI.On("Authenticated").Return(true)
	wishlistAPI.On("WishlistStatus", ctx, []string{"p1"}).Return(nil, errors.New("timeout"))
	reviewAPI.On("ReviewsByProduct", ctx, "p1").Return([]domain.Review{}, nil)

	// The catalog still renders when the wishlist seed fails.
	require.NoError(t, sf.Load(ctx))

	snap := sf.Snapshot()
	assert.Equal(t, LoadReady, snap.State)
	assert.Empty(t, snap.WishlistedIDs)
}

func TestStorefrontLoad_SignedOutSkipsCounts(t *testing.T) {
	storeAPI := new(mockStorefrontAPI)
	sf, wishlistAPI, _ := newTestStorefront(t, storeAPI)
	ctx := context.Background()

	storeAPI.On("ListAllProducts", ctx).Return([]domain.Product{}, nil)
	storeAPI.On("Authenticated").Return(false)
	wishlistAPI.On("Authenticated").Return(false)

	require.NoError(t, sf.Load(ctx))

	storeAPI.AssertNotCalled(t, "CartCount", mock.Anything)
	storeAPI.AssertNotCalled(t, "OrderCount", mock.Anything)
	assert.Equal(t, 0, sf.Snapshot().CartCount)
}

func TestStorefront_FilterDrivesSnapshot(t *testing.T) {
	storeAPI := new(mockStorefrontAPI)
	sf, wishlistAPI, reviewAPI := newTestStorefront(t, storeAPI)
	ctx := context.Background()

	products := []domain.Product{
		{ID: "p1", Name: "Desk Lamp", CategoryName: "Home"},
		{ID: "p2", Name: "Notebook", CategoryName: "Office"},
	}
	storeAPI.On("ListAllProducts", ctx).Return(products, nil)
	storeAPI.On("Authenticated").Return(false)
	wishlistAPI.On("Authenticated").Return(false)
	reviewAPI.On("ReviewsByProduct", ctx, mock.Anything).Return([]domain.Review{}, nil)

	require.NoError(t, sf.Load(ctx))

	sf.SetSearchTerm("lamp")
	snap := sf.Snapshot()
	require.Len(t, snap.FilteredProducts, 1)
	assert.Equal(t, "p1", snap.FilteredProducts[0].ID)

	sf.SetSearchTerm("")
	sf.SetCategory("Office")
	snap = sf.Snapshot()
	require.Len(t, snap.FilteredProducts, 1)
	assert.Equal(t, "p2", snap.FilteredProducts[0].ID)

	// Source list is untouched by filtering.
	assert.Len(t, snap.Products, 2)
}

func TestRefreshCartCount(t *testing.T) {
	storeAPI := new(mockStorefrontAPI)
	sf, _, _ := newTestStorefront(t, storeAPI)
	ctx := context.Background()

	storeAPI.On("Authenticated").Return(true)
	storeAPI.On("CartCount", ctx).Return(7, nil)

	sf.RefreshCartCount(ctx)
	assert.Equal(t, 7, sf.Snapshot().CartCount)
}

func TestLoadStateString(t *testing.T) {
	assert.Equal(t, "pending", LoadPending.String())
	assert.Equal(t, "ready", LoadReady.String())
	assert.Equal(t, "failed", LoadFailed.String())
}
