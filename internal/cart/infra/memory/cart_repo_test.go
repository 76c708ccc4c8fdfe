package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/medplus/storefront/internal/cart/domain"
)

func TestLoadMissingSessionIsEmpty(t *testing.T) {
	repo := NewCartRepo()

	cart, err := repo.Load(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cart.IsEmpty() || cart.Coupon != "" {
		t.Fatalf("missing session not empty: %+v", cart)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepo()

	saved := domain.Cart{
		Items: []domain.LineItem{
			{ProductID: "p1", Name: "Paracetamol 500mg", UnitPrice: decimal.RequireFromString("3.99"), Quantity: 2, Icon: "💊"},
			{ProductID: "p5", Name: "Omega-3 Fish Oil", UnitPrice: decimal.RequireFromString("15.99"), Quantity: 1, Icon: "🐟"},
		},
		Coupon: "WELCOME5",
	}
	if err := repo.Save(ctx, "s1", saved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := repo.Load(ctx, "s1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Coupon != saved.Coupon {
		t.Fatalf("coupon = %q, want %q", got.Coupon, saved.Coupon)
	}
	if len(got.Items) != len(saved.Items) {
		t.Fatalf("got %d items, want %d", len(got.Items), len(saved.Items))
	}
	for i := range saved.Items {
		if got.Items[i].ProductID != saved.Items[i].ProductID ||
			got.Items[i].Quantity != saved.Items[i].Quantity ||
			!got.Items[i].UnitPrice.Equal(saved.Items[i].UnitPrice) {
			t.Fatalf("item %d = %+v, want %+v", i, got.Items[i], saved.Items[i])
		}
	}
}

func TestLoadDetachesStoredState(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepo()

	if err := repo.Save(ctx, "s1", domain.Cart{
		Items: []domain.LineItem{{ProductID: "p1", Quantity: 1}},
	}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	first, _ := repo.Load(ctx, "s1")
	first.Items[0].Quantity = 99

	second, _ := repo.Load(ctx, "s1")
	if second.Items[0].Quantity != 1 {
		t.Fatalf("stored state aliased by caller mutation: %+v", second.Items[0])
	}
}

func TestSessionsDoNotShareRecords(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepo()

	if err := repo.Save(ctx, "s1", domain.Cart{
		Items: []domain.LineItem{{ProductID: "p1", Quantity: 1}},
	}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	other, err := repo.Load(ctx, "s2")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !other.IsEmpty() {
		t.Fatalf("s2 sees s1's cart: %+v", other)
	}
}
