package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSellingPrice(t *testing.T) {
	tests := []struct {
		name     string
		mark     string
		discount string
		want     string
	}{
		{"no discount", "1000", "0", "1000"},
		{"ten percent", "1000", "10", "900"},
		{"full discount", "1000", "100", "0"},
		{"rounds to two decimals", "999", "33", "669.33"},
		{"fractional discount", "250", "12.5", "218.75"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mark := decimal.RequireFromString(tt.mark)
			discount := decimal.RequireFromString(tt.discount)
			want := decimal.RequireFromString(tt.want)

			got := SellingPrice(mark, discount)
			assert.True(t, got.Equal(want), "got %s want %s", got, want)
		})
	}
}

func TestSellingPriceNeverExceedsMarkPrice(t *testing.T) {
	mark := decimal.NewFromInt(5000)
	for d := int64(0); d <= 100; d += 5 {
		got := SellingPrice(mark, decimal.NewFromInt(d))
		assert.True(t, got.LessThanOrEqual(mark))
		assert.True(t, got.GreaterThanOrEqual(decimal.Zero))
	}
}
