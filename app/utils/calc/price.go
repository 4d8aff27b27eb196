package calc

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// SellingPrice derives the customer-facing price from the marked price
// and the discount percentage:
//
//	price = mark_price * (1 - discount_percent/100)
//
// The product write path calls this on every save; the derived price is
// never writable on its own.
func SellingPrice(markPrice, discountPercent decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(discountPercent.Div(hundred))
	return markPrice.Mul(factor).Round(2)
}
