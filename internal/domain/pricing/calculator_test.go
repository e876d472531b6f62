package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculator_PurchaseTotal(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name     string
		quantity string
		price    string
		want     string
	}{
		{"whole numbers", "10", "25", "250"},
		{"fractional quantity", "2.5", "4.2", "10.5"},
		{"rounds to two digits", "3.33", "3.33", "11.09"},
		{"zero price", "7", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.PurchaseTotal(d(tt.quantity), d(tt.price))
			assert.True(t, d(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestCalculator_SaleTotal(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name     string
		quantity string
		price    string
		discount string
		want     string
	}{
		{"no discount", "10", "25", "0", "250"},
		{"ten percent off", "10", "25", "10", "225"},
		{"full discount", "10", "25", "100", "0"},
		{"fractional discount", "1", "99.99", "12.5", "87.49"},
		{"no binary float drift", "3", "0.1", "0", "0.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.SaleTotal(d(tt.quantity), d(tt.price), d(tt.discount))
			assert.True(t, d(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestCalculator_SaleTotal_Idempotent(t *testing.T) {
	calc := NewCalculator()

	first := calc.SaleTotal(d("7.77"), d("13.13"), d("33.33"))
	second := calc.SaleTotal(d("7.77"), d("13.13"), d("33.33"))
	require.True(t, first.Equal(second))
}

func TestValidateDiscount(t *testing.T) {
	assert.NoError(t, ValidateDiscount(d("0")))
	assert.NoError(t, ValidateDiscount(d("100")))
	assert.NoError(t, ValidateDiscount(d("49.5")))
	assert.Error(t, ValidateDiscount(d("-0.01")))
	assert.Error(t, ValidateDiscount(d("100.01")))
}
