package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRecordRoundTrip(t *testing.T) {
	items := []LineItem{
		{ProductID: "p1", Name: "Paracetamol 500mg", UnitPrice: decimal.RequireFromString("3.99"), Quantity: 2, Icon: "💊"},
		{ProductID: "p3", Name: "Digital Thermometer", UnitPrice: decimal.RequireFromString("12.99"), Quantity: 1, Icon: "🌡️"},
	}

	raw, err := EncodeItems(items)
	if err != nil {
		t.Fatalf("EncodeItems failed: %v", err)
	}

	got := DecodeItems(raw)
	if len(got) != len(items) {
		t.Fatalf("decoded %d items, want %d", len(got), len(items))
	}
	for i := range items {
		if got[i].ProductID != items[i].ProductID ||
			got[i].Name != items[i].Name ||
			got[i].Quantity != items[i].Quantity ||
			got[i].Icon != items[i].Icon ||
			!got[i].UnitPrice.Equal(items[i].UnitPrice) {
			t.Fatalf("item %d = %+v, want %+v", i, got[i], items[i])
		}
	}
}

func TestDecodeItemsRecovery(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"garbage", "not json at all"},
		{"wrong shape", `{"product_id":"p1"}`},
		{"zero quantity", `[{"product_id":"p1","quantity":0}]`},
		{"missing product id", `[{"quantity":2}]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DecodeItems([]byte(tc.raw)); got != nil {
				t.Fatalf("DecodeItems(%q) = %+v, want nil", tc.raw, got)
			}
		})
	}
}

func TestCartHelpers(t *testing.T) {
	cart := Cart{Items: []LineItem{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 3},
	}}

	if cart.IsEmpty() {
		t.Fatal("cart with items reported empty")
	}
	if got := cart.TotalQuantity(); got != 5 {
		t.Fatalf("TotalQuantity = %d, want 5", got)
	}
	if got := cart.ItemIndex("p2"); got != 1 {
		t.Fatalf("ItemIndex(p2) = %d, want 1", got)
	}
	if got := cart.ItemIndex("p9"); got != -1 {
		t.Fatalf("ItemIndex(p9) = %d, want -1", got)
	}
	if !(Cart{}).IsEmpty() {
		t.Fatal("zero cart not empty")
	}
}
