package domain

import "github.com/shopspring/decimal"

// Product is one catalog entry. The catalog is fixed at startup and products
// are never mutated during a session.
type Product struct {
	ID          string
	Name        string
	Category    string
	UnitPrice   decimal.Decimal
	Description string
	Icon        string
}
