package domain

import "fmt"

// LowStockThreshold is the stock level at or below which a product is
// presented as almost sold out.
const LowStockThreshold = 5

// Stock status constants.
const (
	StockStatusOut    = "out_of_stock"
	StockStatusLow    = "low_stock"
	StockStatusNormal = "in_stock"
)

// Product represents a product in the storefront catalog as returned by the
// commerce API.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Discount      *int     `json:"discount,omitempty"`
	Stock         int      `json:"stock"`
	CategoryName  string   `json:"category_name"`
	Image         string   `json:"image"`
}

// StockStatus returns the three-state availability derived from the stock
// level: out when none left, low at or below LowStockThreshold, else normal.
func (p *Product) StockStatus() string {
	switch {
	case p.Stock <= 0:
		return StockStatusOut
	case p.Stock <= LowStockThreshold:
		return StockStatusLow
	default:
		return StockStatusNormal
	}
}

// InStock reports whether the product can be added to the cart.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// DisplayPrice formats the price with two fraction digits for presentation.
func (p *Product) DisplayPrice() string {
	return fmt.Sprintf("%.2f", p.Price)
}
