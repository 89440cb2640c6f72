package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCartTotals(t *testing.T) {
	cart := Cart{
		ID: "cart-1",
		Items: []CartItem{
			{ID: "item-1", ProductID: "p-1", Quantity: 2, Price: decimal.NewFromFloat(49.90)},
			{ID: "item-2", ProductID: "p-2", Quantity: 1, Price: decimal.NewFromFloat(120)},
		},
	}

	if got := cart.Items[0].Subtotal().StringFixed(2); got != "99.80" {
		t.Fatalf("expected subtotal 99.80, got %s", got)
	}
	if got := cart.Total().StringFixed(2); got != "219.80" {
		t.Fatalf("expected total 219.80, got %s", got)
	}
}

func TestCartTotalEmpty(t *testing.T) {
	var cart Cart
	if !cart.Total().IsZero() {
		t.Fatalf("expected zero total for empty cart, got %s", cart.Total().String())
	}
}

func TestCartFindItem(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{ID: "item-1", ProductID: "p-1"},
		{ID: "item-2", ProductID: "p-2"},
	}}

	if idx := cart.FindItemByProduct("p-2"); idx != 1 {
		t.Fatalf("expected index 1, got %d", idx)
	}
	if idx := cart.FindItemByProduct("p-9"); idx != -1 {
		t.Fatalf("expected -1 for missing product, got %d", idx)
	}
	if idx := cart.FindItem("item-1"); idx != 0 {
		t.Fatalf("expected index 0, got %d", idx)
	}
	if idx := cart.FindItem("item-9"); idx != -1 {
		t.Fatalf("expected -1 for missing item, got %d", idx)
	}
}
