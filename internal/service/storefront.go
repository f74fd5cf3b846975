package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shopview/dashboard/internal/domain"
)

// StorefrontAPI is the slice of the commerce API the storefront view consumes.
type StorefrontAPI interface {
	ListAllProducts(ctx context.Context) ([]domain.Product, error)
	CartCount(ctx context.Context) (int, error)
	OrderCount(ctx context.Context) (int, error)
	Authenticated() bool
}

// LoadState distinguishes "still loading" from "fetch failed" from "loaded";
// a loaded view with zero matches is a valid state of its own, not an error.
type LoadState int

// Load states.
const (
	LoadPending LoadState = iota
	LoadReady
	LoadFailed
)

func (s LoadState) String() string {
	switch s {
	case LoadReady:
		return "ready"
	case LoadFailed:
		return "failed"
	default:
		return "pending"
	}
}

// Snapshot is the data contract handed to the presentation layer. Everything
// derived (filtered list, grouping, categories, stats) is recomputed from the
// owned state on each call.
type Snapshot struct {
	Products         []domain.Product
	FilteredProducts []domain.Product
	Grouped          map[string][]domain.Product
	Categories       []string
	Filter           FilterState
	WishlistedIDs    []string
	ReviewStats      map[string]domain.ReviewStats
	CartCount        int
	OrderCount       int
	State            LoadState
	Err              error
}

// Storefront owns the product-browsing view's state for its lifetime: the
// fetched product list, the filter, wishlist membership, per-product review
// stats, and the badge counts. Each view instance refetches on mount; there
// is no cross-view shared mutable state.
type Storefront struct {
	mu       sync.Mutex
	api      StorefrontAPI
	wishlist *WishlistService
	reviews  *ReviewService
	logger   *slog.Logger

	products   []domain.Product
	stats      map[string]domain.ReviewStats
	filter     FilterState
	state      LoadState
	err        error
	cartCount  int
	orderCount int
}

// NewStorefront creates a storefront view in the pending state.
func NewStorefront(storefrontAPI StorefrontAPI, wishlist *WishlistService, reviews *ReviewService, logger *slog.Logger) *Storefront {
	return &Storefront{
		api:      storefrontAPI,
		wishlist: wishlist,
		reviews:  reviews,
		logger:   logger,
		stats:    make(map[string]domain.ReviewStats),
		filter:   NewFilterState(),
		state:    LoadPending,
	}
}

// Load fetches the product catalog and seeds the dependent state: wishlist
// membership, per-product review stats, and the badge counts. A catalog fetch
// failure puts the view in the failed state; failures of the dependent
// fetches are isolated so the catalog still renders.
func (s *Storefront) Load(ctx context.Context) error {
	s.mu.Lock()
	s.state = LoadPending
	s.err = nil
	s.mu.Unlock()

	products, err := s.api.ListAllProducts(ctx)
	if err != nil {
		s.mu.Lock()
		s.state = LoadFailed
		s.err = err
		s.mu.Unlock()
		return fmt.Errorf("load products: %w", err)
	}

	ids := make([]string, len(products))
	for i := range products {
		ids[i] = products[i].ID
	}

	if err := s.wishlist.Init(ctx, ids); err != nil {
		s.logger.WarnContext(ctx, "wishlist status load failed, starting empty",
			slog.String("error", err.Error()),
		)
	}

	stats := s.reviews.StatsForProducts(ctx, ids)

	cartCount, orderCount := 0, 0
	if s.api.Authenticated() {
		if n, err := s.api.CartCount(ctx); err == nil {
			cartCount = n
		} else {
			s.logger.WarnContext(ctx, "cart count load failed", slog.String("error", err.Error()))
		}
		if n, err := s.api.OrderCount(ctx); err == nil {
			orderCount = n
		} else {
			s.logger.WarnContext(ctx, "order count load failed", slog.String("error", err.Error()))
		}
	}

	s.mu.Lock()
	s.products = products
	s.stats = stats
	s.cartCount = cartCount
	s.orderCount = orderCount
	s.state = LoadReady
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "storefront loaded",
		slog.Int("products", len(products)),
	)
	return nil
}

// SetSearchTerm updates the search filter.
func (s *Storefront) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.SearchTerm = term
}

// SetCategory updates the selected category.
func (s *Storefront) SetCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.SelectedCategory = category
}

// RefreshCartCount refetches the cart badge count. Wired as the cart
// service's onCartChanged callback.
func (s *Storefront) RefreshCartCount(ctx context.Context) {
	if !s.api.Authenticated() {
		return
	}
	n, err := s.api.CartCount(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "cart count refresh failed", slog.String("error", err.Error()))
		return
	}
	s.mu.Lock()
	s.cartCount = n
	s.mu.Unlock()
}

// Snapshot derives the presentation state from the owned data.
func (s *Storefront) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := FilterProducts(s.products, s.filter)

	stats := make(map[string]domain.ReviewStats, len(s.stats))
	for id, st := range s.stats {
		stats[id] = st
	}

	return Snapshot{
		Products:         s.products,
		FilteredProducts: filtered,
		Grouped:          GroupByCategory(filtered),
		Categories:       Categories(s.products),
		Filter:           s.filter,
		WishlistedIDs:    s.wishlist.WishlistedIDs(),
		ReviewStats:      stats,
		CartCount:        s.cartCount,
		OrderCount:       s.orderCount,
		State:            s.state,
		Err:              s.err,
	}
}
