package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/medplus/storefront/internal/cart/domain"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidCoupon   = errors.New("invalid coupon code")
)

// Service owns a session's cart state. Every mutation loads the current
// record, applies the change, and writes the whole record back synchronously,
// so the store always holds the latest cart.
type Service struct {
	repo    CartRepo
	catalog CatalogReader
	coupons CouponResolver
}

func NewService(repo CartRepo, catalog CatalogReader, coupons CouponResolver) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
		coupons: coupons,
	}
}

// Snapshot returns the session's current cart for read-only consumption.
func (s *Service) Snapshot(ctx context.Context, sessionID string) (domain.Cart, error) {
	return s.repo.Load(ctx, sessionID)
}

// AddItem puts one unit of a product into the cart. An id the catalog does
// not know is a no-op, not an error. An existing line item gains quantity 1;
// a new item is appended at the tail with the product's current name, price,
// and icon frozen in.
func (s *Service) AddItem(ctx context.Context, sessionID, productID string) error {
	product, err := s.catalog.GetProduct(ctx, productID)
	if errors.Is(err, ErrProductNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("resolve product %s: %w", productID, err)
	}

	cart, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	if i := cart.ItemIndex(product.ID); i >= 0 {
		cart.Items[i].Quantity++
	} else {
		cart.Items = append(cart.Items, domain.LineItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.UnitPrice,
			Quantity:  1,
			Icon:      product.Icon,
		})
	}

	return s.repo.Save(ctx, sessionID, cart)
}

// RemoveItem deletes the line item for productID; absent ids are a no-op.
func (s *Service) RemoveItem(ctx context.Context, sessionID, productID string) error {
	cart, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	i := cart.ItemIndex(productID)
	if i < 0 {
		return nil
	}
	cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)

	return s.repo.Save(ctx, sessionID, cart)
}

// UpdateQuantity adjusts a line item's quantity by delta, flooring at 1.
// Removing an item goes through RemoveItem, never through a delta. Absent ids
// are a no-op.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, productID string, delta int32) error {
	cart, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	i := cart.ItemIndex(productID)
	if i < 0 {
		return nil
	}

	qty := cart.Items[i].Quantity + delta
	if qty < 1 {
		qty = 1
	}
	cart.Items[i].Quantity = qty

	return s.repo.Save(ctx, sessionID, cart)
}

// ApplyCoupon sets the session's coupon. An empty (after trimming) code
// clears the applied coupon. A code the registry does not know is rejected
// with ErrInvalidCoupon and leaves the applied coupon unchanged.
func (s *Service) ApplyCoupon(ctx context.Context, sessionID, code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))

	if code != "" {
		if _, err := s.coupons.Resolve(code); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidCoupon, code)
		}
	}

	cart, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return err
	}
	cart.Coupon = code

	return s.repo.Save(ctx, sessionID, cart)
}

// ClearCart replaces the session's record with an empty cart, dropping all
// items and the applied coupon in one write.
func (s *Service) ClearCart(ctx context.Context, sessionID string) error {
	return s.repo.Save(ctx, sessionID, domain.Cart{})
}
