package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/medplus/storefront/internal/cart/domain"
)

// Totals is the priced view of a cart. Values carry full precision; rounding
// to two digits happens only at display time (see FormatAmount), so repeated
// recomputation never compounds rounding error.
type Totals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

type CouponResolver interface {
	Resolve(code string) (decimal.Decimal, error)
}

// Engine computes cart totals. It holds no state beyond the coupon table and
// never mutates its input.
type Engine struct {
	coupons CouponResolver
}

func NewEngine(coupons CouponResolver) *Engine {
	return &Engine{coupons: coupons}
}

var oneHundred = decimal.NewFromInt(100)

// Compute prices the cart: subtotal over all lines, the applied coupon's
// percentage off the subtotal, and a total clamped at zero. A coupon that no
// longer resolves contributes no discount.
func (e *Engine) Compute(cart domain.Cart) Totals {
	subtotal := decimal.Zero
	for _, it := range cart.Items {
		subtotal = subtotal.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	discount := decimal.Zero
	if cart.Coupon != "" {
		if pct, err := e.coupons.Resolve(cart.Coupon); err == nil {
			discount = subtotal.Mul(pct).Div(oneHundred)
		}
	}

	total := subtotal.Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Total:    total,
	}
}
