package helpers

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceBound(t *testing.T) {
	assert.Nil(t, ParsePriceBound(""))
	assert.Nil(t, ParsePriceBound("  "))
	assert.Nil(t, ParsePriceBound("abc"))
	assert.Nil(t, ParsePriceBound("12,000"))

	bound := ParsePriceBound("1500")
	require.NotNil(t, bound)
	assert.True(t, bound.Equal(decimal.NewFromInt(1500)))

	bound = ParsePriceBound(" 99.50 ")
	require.NotNil(t, bound)
	assert.True(t, bound.Equal(decimal.RequireFromString("99.50")))
}
