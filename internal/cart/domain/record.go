package domain

import "encoding/json"

// EncodeItems serializes the cart's line items as the persisted record: a
// JSON array in insertion order.
func EncodeItems(items []LineItem) ([]byte, error) {
	if items == nil {
		items = []LineItem{}
	}
	return json.Marshal(items)
}

// DecodeItems parses a persisted record. A missing or malformed record is
// never an error: it decodes to an empty item list, so a corrupt store always
// recovers to a well-formed empty cart.
func DecodeItems(raw []byte) []LineItem {
	if len(raw) == 0 {
		return nil
	}
	var items []LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	for _, it := range items {
		if it.ProductID == "" || it.Quantity < 1 {
			return nil
		}
	}
	return items
}
