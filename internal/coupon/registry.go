package coupon

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("coupon not found")

// Registry maps coupon codes to a percentage off the cart subtotal. Codes are
// matched case-insensitively; a single coupon applies to the whole cart, with
// no expiry, stacking, or per-product rules.
type Registry struct {
	percentOff map[string]decimal.Decimal
}

// NewRegistry builds a registry from a code → percent-off table. Keys are
// normalized on the way in, so callers may pass codes in any case.
func NewRegistry(codes map[string]decimal.Decimal) *Registry {
	percentOff := make(map[string]decimal.Decimal, len(codes))
	for code, pct := range codes {
		percentOff[Normalize(code)] = pct
	}
	return &Registry{percentOff: percentOff}
}

// Default returns the storefront's built-in coupon table.
func Default() *Registry {
	return NewRegistry(map[string]decimal.Decimal{
		"MED10":    decimal.NewFromInt(10),
		"WELCOME5": decimal.NewFromInt(5),
	})
}

// Resolve returns the percent-off for a code, or ErrNotFound.
func (r *Registry) Resolve(code string) (decimal.Decimal, error) {
	pct, ok := r.percentOff[Normalize(code)]
	if !ok {
		return decimal.Decimal{}, ErrNotFound
	}
	return pct, nil
}

// Normalize trims surrounding whitespace and upper-cases a coupon code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
