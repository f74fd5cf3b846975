package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shopview/dashboard/internal/domain"
	apperrors "github.com/shopview/dashboard/pkg/errors"
)

// CartAPI is the slice of the commerce API the cart service consumes.
type CartAPI interface {
	AddToCart(ctx context.Context, productID string, quantity int) error
	Authenticated() bool
}

// CartService issues add-to-cart requests. It does not own the authoritative
// cart count: on success it invokes the injected callbacks so dependent views
// (badge counters, snackbars) refresh independently.
type CartService struct {
	mu      sync.Mutex
	api     CartAPI
	logger  *slog.Logger
	pending map[string]bool

	// onAdded receives the product's display name for toast display.
	onAdded func(name string)
	// onCartChanged triggers a refresh of the authoritative cart count.
	onCartChanged func()
}

// NewCartService creates a new cart service. Either callback may be nil.
func NewCartService(cartAPI CartAPI, logger *slog.Logger, onAdded func(name string), onCartChanged func()) *CartService {
	return &CartService{
		api:           cartAPI,
		logger:        logger,
		pending:       make(map[string]bool),
		onAdded:       onAdded,
		onCartChanged: onCartChanged,
	}
}

// IsPending reports whether an add-to-cart call is outstanding for the given
// product. The flag is keyed per product so other products stay actionable.
func (s *CartService) IsPending(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending[productID]
}

// AddToCart adds a product to the customer's cart. It rejects before any
// network call when no token is present or the product has no stock, and
// drops the call when an add for the same product is already in flight.
func (s *CartService) AddToCart(ctx context.Context, product domain.Product, quantity int) error {
	if !s.api.Authenticated() {
		return apperrors.Unauthenticated("sign in to add products to your cart")
	}
	if !product.InStock() {
		return apperrors.OutOfStock(product.Name)
	}
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	if s.pending[product.ID] {
		s.mu.Unlock()
		s.logger.DebugContext(ctx, "add to cart dropped, request in flight",
			slog.String("product_id", product.ID),
		)
		return nil
	}
	s.pending[product.ID] = true
	s.mu.Unlock()

	err := s.api.AddToCart(ctx, product.ID, quantity)

	s.mu.Lock()
	delete(s.pending, product.ID)
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}

	s.logger.InfoContext(ctx, "product added to cart",
		slog.String("product_id", product.ID),
		slog.Int("quantity", quantity),
	)

	if s.onAdded != nil {
		s.onAdded(product.Name)
	}
	if s.onCartChanged != nil {
		s.onCartChanged()
	}
	return nil
}
