package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	cartdomain "github.com/medplus/storefront/internal/cart/domain"
	"github.com/medplus/storefront/internal/checkout/domain"
	"github.com/medplus/storefront/internal/pricing"
)

var ErrEmptyCart = errors.New("cart is empty")

type CartStore interface {
	Snapshot(ctx context.Context, sessionID string) (cartdomain.Cart, error)
	ClearCart(ctx context.Context, sessionID string) error
}

type Pricer interface {
	Compute(cart cartdomain.Cart) pricing.Totals
}

// Service commits the terminal cart transition: price the cart, issue a
// receipt, and replace the stored cart with an empty one.
type Service struct {
	cart   CartStore
	pricer Pricer
}

func NewService(cart CartStore, pricer Pricer) *Service {
	return &Service{
		cart:   cart,
		pricer: pricer,
	}
}

// Checkout prices the session's cart and, on success, clears it. An empty
// cart is rejected with ErrEmptyCart and nothing changes. The receipt is
// built from a snapshot taken before the clear, and the clear itself is a
// single record replacement, so no caller can observe a half-emptied cart.
func (s *Service) Checkout(ctx context.Context, sessionID string) (domain.Receipt, error) {
	cart, err := s.cart.Snapshot(ctx, sessionID)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("snapshot cart: %w", err)
	}

	if cart.IsEmpty() {
		return domain.Receipt{}, ErrEmptyCart
	}

	totals := s.pricer.Compute(cart)

	lines := make([]domain.ReceiptLine, 0, len(cart.Items))
	for _, it := range cart.Items {
		lines = append(lines, domain.ReceiptLine{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			LineTotal: it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))),
		})
	}

	receipt := domain.Receipt{
		OrderID:       uuid.NewString(),
		Lines:         lines,
		Subtotal:      totals.Subtotal,
		Discount:      totals.Discount,
		AmountCharged: totals.Total,
		CouponCode:    cart.Coupon,
		PlacedAt:      time.Now().UTC(),
	}

	if err := s.cart.ClearCart(ctx, sessionID); err != nil {
		return domain.Receipt{}, fmt.Errorf("clear cart: %w", err)
	}

	return receipt, nil
}
