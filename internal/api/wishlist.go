package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopview/dashboard/internal/domain"
)

// Wishlist returns the customer's saved products.
func (c *Client) Wishlist(ctx context.Context) ([]domain.Product, error) {
	var out dataEnvelope[[]domain.Product]
	if err := c.get(ctx, "wishlist.list", "/wishlist", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// WishlistStatus returns, for each requested product ID, whether it is on the
// customer's wishlist. Views use this to seed membership once on mount
// instead of reconstructing it locally.
func (c *Client) WishlistStatus(ctx context.Context, productIDs []string) (map[string]bool, error) {
	body := map[string][]string{"productIds": productIDs}
	var out dataEnvelope[map[string]bool]
	if err := c.do(ctx, "wishlist.status", http.MethodPost, "/wishlist/status", nil, body, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// AddToWishlist saves a product to the customer's wishlist.
func (c *Client) AddToWishlist(ctx context.Context, productID string) error {
	body := map[string]string{"productId": productID}
	return c.do(ctx, "wishlist.add", http.MethodPost, "/wishlist", nil, body, nil)
}

// RemoveFromWishlist removes a product from the customer's wishlist.
func (c *Client) RemoveFromWishlist(ctx context.Context, productID string) error {
	return c.do(ctx, "wishlist.remove", http.MethodDelete, "/wishlist/"+url.PathEscape(productID), nil, nil, nil)
}
