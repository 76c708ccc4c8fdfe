package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/medplus/storefront/internal/cart/domain"
)

// CartRepo persists one cart per session in Redis: the item list as a JSON
// array under cart:<session> and the applied coupon under coupon:<session>.
// Both keys are written in a single MSET so the stored record never mixes an
// old cart with a new coupon.
type CartRepo struct {
	rdb    *redis.Client
	prefix string
}

func NewCartRepo(rdb *redis.Client, prefix string) *CartRepo {
	return &CartRepo{
		rdb:    rdb,
		prefix: prefix,
	}
}

func (r *CartRepo) cartKey(sessionID string) string {
	return r.prefix + "cart:" + sessionID
}

func (r *CartRepo) couponKey(sessionID string) string {
	return r.prefix + "coupon:" + sessionID
}

// Load reads the session's record. Absent or malformed values decode to an
// empty cart; storage corruption never propagates past this boundary.
func (r *CartRepo) Load(ctx context.Context, sessionID string) (domain.Cart, error) {
	vals, err := r.rdb.MGet(ctx, r.cartKey(sessionID), r.couponKey(sessionID)).Result()
	if err != nil {
		return domain.Cart{}, fmt.Errorf("load cart %s: %w", sessionID, err)
	}

	var cart domain.Cart
	if raw, ok := vals[0].(string); ok {
		cart.Items = domain.DecodeItems([]byte(raw))
	}
	if cart.Items == nil {
		// a corrupt item record also invalidates the coupon record
		return domain.Cart{}, nil
	}
	if code, ok := vals[1].(string); ok {
		cart.Coupon = code
	}
	return cart, nil
}

func (r *CartRepo) Save(ctx context.Context, sessionID string, cart domain.Cart) error {
	raw, err := domain.EncodeItems(cart.Items)
	if err != nil {
		return fmt.Errorf("encode cart %s: %w", sessionID, err)
	}

	err = r.rdb.MSet(ctx,
		r.cartKey(sessionID), string(raw),
		r.couponKey(sessionID), cart.Coupon,
	).Err()
	if err != nil {
		return fmt.Errorf("save cart %s: %w", sessionID, err)
	}
	return nil
}
