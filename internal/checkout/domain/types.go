package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReceiptLine struct {
	ProductID string
	Name      string
	Quantity  int32
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// Receipt records a committed checkout. AmountCharged is the cart total at
// the moment of commit; no payment processor is involved.
type Receipt struct {
	OrderID       string
	Lines         []ReceiptLine
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	AmountCharged decimal.Decimal
	CouponCode    string
	PlacedAt      time.Time
}
