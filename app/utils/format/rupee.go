package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var npr = accounting.Accounting{Symbol: "Rs. ", Precision: 2, Thousand: ",", Decimal: "."}

// Rupee renders a decimal amount as a Nepali rupee display string,
// e.g. "Rs. 11,400.00".
func Rupee(amount decimal.Decimal) string {
	return npr.FormatMoneyDecimal(amount)
}
