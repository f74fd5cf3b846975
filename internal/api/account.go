package api

import (
	"context"
	"net/http"

	"github.com/shopview/dashboard/internal/domain"
	"github.com/shopview/dashboard/pkg/pagination"
)

// GetProfile returns the customer's account profile.
func (c *Client) GetProfile(ctx context.Context) (*domain.Profile, error) {
	var out dataEnvelope[domain.Profile]
	if err := c.get(ctx, "profile.get", "/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// UpdateProfileInput holds the editable profile fields.
type UpdateProfileInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// UpdateProfile updates the customer's account profile.
func (c *Client) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.Profile, error) {
	var out dataEnvelope[domain.Profile]
	if err := c.do(ctx, "profile.update", http.MethodPut, "/profile", nil, input, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// ChangePassword replaces the customer's password.
func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	body := map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	}
	return c.do(ctx, "profile.change_password", http.MethodPut, "/profile/password", nil, body, nil)
}

// ListOrders returns one page of the customer's order history.
func (c *Client) ListOrders(ctx context.Context, params pagination.Params) (*pagination.Result[domain.Order], error) {
	var out pagination.Result[domain.Order]
	if err := c.get(ctx, "orders.list", "/orders", params.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OrderCount returns the number of orders the customer has placed.
func (c *Client) OrderCount(ctx context.Context) (int, error) {
	var out dataEnvelope[struct {
		Count int `json:"count"`
	}]
	if err := c.get(ctx, "orders.count", "/orders/count", nil, &out); err != nil {
		return 0, err
	}
	return out.Data.Count, nil
}

// ListVouchers returns the customer's available vouchers.
func (c *Client) ListVouchers(ctx context.Context) ([]domain.Voucher, error) {
	var out dataEnvelope[[]domain.Voucher]
	if err := c.get(ctx, "vouchers.list", "/vouchers", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}
