package ui

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		expected StockTier
	}{
		{name: "eleven units is high stock", quantity: 11, expected: TierHighStock},
		{name: "ten units is low stock", quantity: 10, expected: TierLowStock},
		{name: "one unit is low stock", quantity: 1, expected: TierLowStock},
		{name: "zero units is out of stock", quantity: 0, expected: TierOutOfStock},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, TierFor(test.quantity))
		})
	}
}

func TestBadgeShowsUnitCount(t *testing.T) {
	styles := DefaultStyles()
	assert.Contains(t, styles.Badge(5), "5 units")
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$9.99", FormatPrice(decimal.NewFromFloat(9.99)))
	assert.Equal(t, "$0.01", FormatPrice(decimal.NewFromFloat(0.01)))
	assert.Equal(t, "$1500.00", FormatPrice(decimal.NewFromInt(1500)))
}

func TestFormatDate(t *testing.T) {
	created := time.Date(2025, time.March, 9, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "09/03/2025", FormatDate(created))
}
