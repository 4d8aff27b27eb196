package helpers

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParsePriceBound turns a query value into an optional price bound.
// A malformed number means the filter is simply not applied, never a
// request error.
func ParsePriceBound(raw string) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	bound, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &bound
}
