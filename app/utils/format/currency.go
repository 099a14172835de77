package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var pkr = accounting.Accounting{Symbol: "Rs. ", Precision: 0, Thousand: ","}

// Rupees renders a decimal amount as a display string, e.g. "Rs. 54,999".
func Rupees(amount decimal.Decimal) string {
	return pkr.FormatMoneyDecimal(amount)
}
