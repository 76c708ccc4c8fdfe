package adapter

import (
	"context"
	"errors"

	cartapp "github.com/medplus/storefront/internal/cart/app"
	catalogapp "github.com/medplus/storefront/internal/catalog/app"
)

// CatalogServiceReader bridges the catalog service into the cart's
// CatalogReader port, translating catalog lookup failures into the cart's
// own not-found condition.
type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) GetProduct(ctx context.Context, productID string) (cartapp.Product, error) {
	p, err := r.svc.GetProduct(ctx, productID)
	if errors.Is(err, catalogapp.ErrNotFound) || errors.Is(err, catalogapp.ErrInvalidInput) {
		return cartapp.Product{}, cartapp.ErrProductNotFound
	}
	if err != nil {
		return cartapp.Product{}, err
	}

	return cartapp.Product{
		ID:        p.ID,
		Name:      p.Name,
		UnitPrice: p.UnitPrice,
		Icon:      p.Icon,
	}, nil
}
