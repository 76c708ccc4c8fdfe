package pricing

import "github.com/shopspring/decimal"

// FormatAmount renders a monetary value for display, rounded to two digits.
// This is the only place amounts are rounded.
func FormatAmount(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
