package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	apperrors "github.com/shopview/dashboard/pkg/errors"
)

// WishlistAPI is the slice of the commerce API the wishlist service consumes.
type WishlistAPI interface {
	WishlistStatus(ctx context.Context, productIDs []string) (map[string]bool, error)
	AddToWishlist(ctx context.Context, productID string) error
	RemoveFromWishlist(ctx context.Context, productID string) error
	Authenticated() bool
}

// ToggleState tags the lifecycle of a wishlist mutation per product, making
// the in-flight and rollback windows explicit instead of a bare boolean.
type ToggleState int

// Toggle states.
const (
	ToggleIdle ToggleState = iota
	TogglePending
	ToggleConfirmed
	ToggleRolledBack
)

func (s ToggleState) String() string {
	switch s {
	case TogglePending:
		return "pending"
	case ToggleConfirmed:
		return "confirmed"
	case ToggleRolledBack:
		return "rolled_back"
	default:
		return "idle"
	}
}

// WishlistService tracks which products are wishlisted and toggles membership
// against the server. Membership only changes once the server confirms; a
// failed toggle leaves the set exactly as it was. While one toggle is in
// flight, further toggles are dropped (not queued) to prevent duplicate
// requests from rapid repeated clicks.
type WishlistService struct {
	mu       sync.Mutex
	api      WishlistAPI
	logger   *slog.Logger
	member   map[string]bool
	states   map[string]ToggleState
	inFlight bool
}

// NewWishlistService creates a new wishlist service with empty membership.
func NewWishlistService(wishlistAPI WishlistAPI, logger *slog.Logger) *WishlistService {
	return &WishlistService{
		api:    wishlistAPI,
		logger: logger,
		member: make(map[string]bool),
		states: make(map[string]ToggleState),
	}
}

// Init seeds membership from the server's status endpoint for the products
// the view displays. Called once per view lifecycle; membership is never
// reconstructed from guesses. A signed-out customer gets an empty set.
func (s *WishlistService) Init(ctx context.Context, productIDs []string) error {
	if !s.api.Authenticated() {
		s.mu.Lock()
		s.member = make(map[string]bool)
		s.states = make(map[string]ToggleState)
		s.mu.Unlock()
		return nil
	}

	status, err := s.api.WishlistStatus(ctx, productIDs)
	if err != nil {
		return fmt.Errorf("load wishlist status: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.member = make(map[string]bool, len(status))
	s.states = make(map[string]ToggleState)
	for id, wishlisted := range status {
		if wishlisted {
			s.member[id] = true
		}
	}
	return nil
}

// Contains reports whether a product is currently wishlisted.
func (s *WishlistService) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.member[productID]
}

// WishlistedIDs returns the current membership, sorted for deterministic
// presentation.
func (s *WishlistService) WishlistedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.member))
	for id := range s.member {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// State returns the toggle lifecycle state for a product.
func (s *WishlistService) State(productID string) ToggleState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[productID]
}

// Busy reports whether a wishlist mutation is currently in flight.
func (s *WishlistService) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// Toggle flips a product's wishlist membership through the server. It fails
// with an Unauthenticated error before any network call when no token is
// present. A call arriving while another toggle is in flight is dropped.
func (s *WishlistService) Toggle(ctx context.Context, productID string) error {
	if !s.api.Authenticated() {
		return apperrors.Unauthenticated("sign in to save products")
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		s.logger.DebugContext(ctx, "wishlist toggle dropped, operation in flight",
			slog.String("product_id", productID),
		)
		return nil
	}
	s.inFlight = true
	s.states[productID] = TogglePending
	adding := !s.member[productID]
	s.mu.Unlock()

	var err error
	if adding {
		err = s.api.AddToWishlist(ctx, productID)
	} else {
		err = s.api.RemoveFromWishlist(ctx, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false

	if err != nil {
		// Membership was never flipped; mark the window as rolled back.
		s.states[productID] = ToggleRolledBack
		return fmt.Errorf("toggle wishlist: %w", err)
	}

	if adding {
		s.member[productID] = true
	} else {
		delete(s.member, productID)
	}
	s.states[productID] = ToggleConfirmed

	s.logger.InfoContext(ctx, "wishlist toggled",
		slog.String("product_id", productID),
		slog.Bool("wishlisted", adding),
	)
	return nil
}
