package domain

import "github.com/shopspring/decimal"

// LineItem is one product entry in a cart. Name, UnitPrice, and Icon are
// snapshotted from the catalog at the moment the product is first added;
// later catalog changes never reach items already in the cart. The JSON tags
// define the persisted record shape.
type LineItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int32           `json:"quantity"`
	Icon      string          `json:"icon"`
}

// Cart holds one session's line items in insertion order plus the applied
// coupon code (empty when none). At most one line item exists per product id,
// and every quantity is at least 1.
type Cart struct {
	Items  []LineItem
	Coupon string
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ItemIndex returns the position of the line item for productID, or -1.
func (c Cart) ItemIndex(productID string) int {
	for i, it := range c.Items {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}

// TotalQuantity is the sum of all line quantities, as shown on the cart badge.
func (c Cart) TotalQuantity() int32 {
	var n int32
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}
