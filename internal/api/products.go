package api

import (
	"context"
	"net/url"

	"github.com/shopview/dashboard/internal/domain"
	"github.com/shopview/dashboard/pkg/pagination"
)

// ListProducts returns one page of the product catalog.
func (c *Client) ListProducts(ctx context.Context, params pagination.Params) (*pagination.Result[domain.Product], error) {
	var out pagination.Result[domain.Product]
	if err := c.get(ctx, "products.list", "/products", params.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAllProducts walks every catalog page and returns the combined list.
func (c *Client) ListAllProducts(ctx context.Context) ([]domain.Product, error) {
	params := pagination.Params{Page: 1, PerPage: 100}

	var all []domain.Product
	for {
		page, err := c.ListProducts(ctx, params)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Data...)
		if !page.HasNext || len(page.Data) == 0 {
			return all, nil
		}
		params.Page++
	}
}

// GetProduct returns a single product by ID.
func (c *Client) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	var out dataEnvelope[domain.Product]
	if err := c.get(ctx, "products.get", "/products/"+url.PathEscape(productID), nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}
