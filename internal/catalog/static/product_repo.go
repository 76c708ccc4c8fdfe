package static

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/medplus/storefront/internal/catalog/app"
	"github.com/medplus/storefront/internal/catalog/domain"
)

// defaultProducts is the storefront catalog. It is compiled in and read-only;
// price changes ship as a new build and never touch carts already holding a
// snapshotted price.
var defaultProducts = []domain.Product{
	{ID: "p1", Name: "Paracetamol 500mg", Category: "OTC", UnitPrice: decimal.RequireFromString("3.99"), Description: "Effective pain and fever relief", Icon: "💊"},
	{ID: "p2", Name: "Vitamin C 1000mg", Category: "Wellness", UnitPrice: decimal.RequireFromString("8.99"), Description: "Boosts immune system function", Icon: "🍊"},
	{ID: "p3", Name: "Digital Thermometer", Category: "Devices", UnitPrice: decimal.RequireFromString("12.99"), Description: "Fast and accurate temperature reading", Icon: "🌡️"},
	{ID: "p4", Name: "Blood Pressure Monitor", Category: "Devices", UnitPrice: decimal.RequireFromString("45.99"), Description: "Professional home blood pressure tracking", Icon: "❤️"},
	{ID: "p5", Name: "Omega-3 Fish Oil", Category: "Supplements", UnitPrice: decimal.RequireFromString("15.99"), Description: "Supports heart and brain health", Icon: "🐟"},
	{ID: "p6", Name: "Hand Sanitizer", Category: "Hygiene", UnitPrice: decimal.RequireFromString("5.99"), Description: "Kills 99.9% of germs without water", Icon: "🧴"},
}

type ProductRepo struct {
	ordered []domain.Product
	byID    map[string]domain.Product
}

// NewProductRepo builds a repo over the compiled-in catalog.
func NewProductRepo() *ProductRepo {
	return NewProductRepoWith(defaultProducts)
}

// NewProductRepoWith builds a repo over a caller-supplied product table.
// Used by tests that need a controlled catalog.
func NewProductRepoWith(products []domain.Product) *ProductRepo {
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &ProductRepo{
		ordered: products,
		byID:    byID,
	}
}

func (r *ProductRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return domain.Product{}, app.ErrNotFound
	}
	return p, nil
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.ordered))
	copy(out, r.ordered)
	return out, nil
}
