package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_StockStatus(t *testing.T) {
	tests := []struct {
		name  string
		stock int
		want  string
	}{
		{"zero stock is out", 0, StockStatusOut},
		{"negative stock is out", -1, StockStatusOut},
		{"one unit is low", 1, StockStatusLow},
		{"threshold is low", LowStockThreshold, StockStatusLow},
		{"above threshold is normal", LowStockThreshold + 1, StockStatusNormal},
		{"plenty is normal", 100, StockStatusNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Stock: tt.stock}
			assert.Equal(t, tt.want, p.StockStatus())
		})
	}
}

func TestProduct_InStock(t *testing.T) {
	assert.False(t, (&Product{Stock: 0}).InStock())
	assert.True(t, (&Product{Stock: 1}).InStock())
}

func TestProduct_DisplayPrice_TwoFractionDigits(t *testing.T) {
	p := Product{Price: 19.9}
	assert.Equal(t, "19.90", p.DisplayPrice())

	p = Product{Price: 5}
	assert.Equal(t, "5.00", p.DisplayPrice())

	p = Product{Price: 3.456}
	assert.Equal(t, "3.46", p.DisplayPrice())
}
