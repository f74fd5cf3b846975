package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopview/dashboard/internal/domain"
)

// ReviewsByProduct returns every review for a product.
func (c *Client) ReviewsByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	var out dataEnvelope[[]domain.Review]
	if err := c.get(ctx, "reviews.list", "/products/"+url.PathEscape(productID)+"/reviews", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// UpsertReview creates the customer's review for a product, or updates it if
// one already exists. The server keys reviews by (product, customer).
func (c *Client) UpsertReview(ctx context.Context, productID string, rating int, comment string) (*domain.Review, error) {
	body := map[string]any{
		"rating":  rating,
		"comment": comment,
	}
	var out dataEnvelope[domain.Review]
	if err := c.do(ctx, "reviews.upsert", http.MethodPost,
		"/products/"+url.PathEscape(productID)+"/reviews", nil, body, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// DeleteReview deletes a review by ID.
func (c *Client) DeleteReview(ctx context.Context, reviewID string) error {
	return c.do(ctx, "reviews.delete", http.MethodDelete, "/reviews/"+url.PathEscape(reviewID), nil, nil, nil)
}
