package app

import (
	"context"
	"errors"
	"testing"

	"github.com/medplus/storefront/internal/catalog/domain"
)

type fakeRepo struct {
	products map[string]domain.Product
	order    []string
}

func (f fakeRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, ErrNotFound
	}
	return p, nil
}

func (f fakeRepo) List(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.products[id])
	}
	return out, nil
}

func TestGetProduct(t *testing.T) {
	svc := NewService(fakeRepo{
		products: map[string]domain.Product{"p1": {ID: "p1", Name: "Paracetamol 500mg"}},
		order:    []string{"p1"},
	})

	t.Run("blank id -> invalid", func(t *testing.T) {
		_, err := svc.GetProduct(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("unknown id -> not found", func(t *testing.T) {
		_, err := svc.GetProduct(context.Background(), "p9")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("known id", func(t *testing.T) {
		p, err := svc.GetProduct(context.Background(), "p1")
		if err != nil {
			t.Fatalf("GetProduct failed: %v", err)
		}
		if p.Name != "Paracetamol 500mg" {
			t.Fatalf("name = %q", p.Name)
		}
	})
}

func TestListProductsKeepsOrder(t *testing.T) {
	svc := NewService(fakeRepo{
		products: map[string]domain.Product{
			"p2": {ID: "p2"},
			"p1": {ID: "p1"},
		},
		order: []string{"p2", "p1"},
	})

	products, err := svc.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}
	if len(products) != 2 || products[0].ID != "p2" || products[1].ID != "p1" {
		t.Fatalf("order wrong: %+v", products)
	}
}
