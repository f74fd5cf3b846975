package domain

import "time"

// Order status constants.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order is a past purchase as listed in the customer's order history.
type Order struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Total     float64   `json:"total"`
	ItemCount int       `json:"itemCount"`
	CreatedAt time.Time `json:"createdAt"`
}

// Voucher is a discount code available to the customer.
type Voucher struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Discount  float64   `json:"discount"`
	MinSpend  float64   `json:"minSpend"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// IsExpired reports whether the voucher can no longer be redeemed at the
// given instant.
func (v *Voucher) IsExpired(now time.Time) bool {
	return !now.Before(v.ExpiresAt)
}

// Profile holds the customer's account settings as returned by the API.
type Profile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}
