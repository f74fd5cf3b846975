package api

import (
	"context"
	"net/http"
)

// AddToCart adds the given quantity of a product to the customer's cart.
func (c *Client) AddToCart(ctx context.Context, productID string, quantity int) error {
	body := map[string]any{
		"productId": productID,
		"quantity":  quantity,
	}
	return c.do(ctx, "cart.add", http.MethodPost, "/cart", nil, body, nil)
}

// CartCount returns the number of items currently in the customer's cart.
func (c *Client) CartCount(ctx context.Context) (int, error) {
	var out dataEnvelope[struct {
		Count int `json:"count"`
	}]
	if err := c.get(ctx, "cart.count", "/cart/count", nil, &out); err != nil {
		return 0, err
	}
	return out.Data.Count, nil
}
