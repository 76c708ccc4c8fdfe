package app

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/medplus/storefront/internal/cart/domain"
)

// CartRepo stores one cart record per session key. Save replaces the whole
// record in a single write; there is no partial update.
type CartRepo interface {
	Load(ctx context.Context, sessionID string) (domain.Cart, error)
	Save(ctx context.Context, sessionID string, cart domain.Cart) error
}

type Product struct {
	ID        string
	Name      string
	UnitPrice decimal.Decimal
	Icon      string
}

type CatalogReader interface {
	GetProduct(ctx context.Context, productID string) (Product, error)
}

type CouponResolver interface {
	Resolve(code string) (decimal.Decimal, error)
}
