package memory

import (
	"context"
	"sync"

	"github.com/medplus/storefront/internal/cart/domain"
)

// CartRepo keeps cart records in process memory, one per session key. It
// backs tests and offline runs with the same whole-record Load/Save contract
// as the Redis store.
type CartRepo struct {
	mu    sync.Mutex
	carts map[string]domain.Cart
}

func NewCartRepo() *CartRepo {
	return &CartRepo{
		carts: make(map[string]domain.Cart),
	}
}

func (r *CartRepo) Load(ctx context.Context, sessionID string) (domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return copyCart(r.carts[sessionID]), nil
}

func (r *CartRepo) Save(ctx context.Context, sessionID string, cart domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[sessionID] = copyCart(cart)
	return nil
}

// copyCart detaches the item slice so callers cannot alias stored state.
func copyCart(c domain.Cart) domain.Cart {
	out := domain.Cart{Coupon: c.Coupon}
	if len(c.Items) > 0 {
		out.Items = make([]domain.LineItem, len(c.Items))
		copy(out.Items, c.Items)
	}
	return out
}
