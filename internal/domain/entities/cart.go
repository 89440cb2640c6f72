package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart is a user's shopping cart persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id, sort key created_at
//
// Invariant: at most one cart per user has IsActive=true. The cart use case
// serializes per-user mutations to enforce it.
type Cart struct {
	ID       string     `json:"id"`
	UserID   string     `json:"user_id"`
	IsActive bool       `json:"is_active"`
	Items    []CartItem `json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartItem is one line of a cart. Price is snapshotted when the item is
// added; later catalog price changes do not affect it.
//
// Invariant: at most one item per (cart, product). Re-adding a product
// replaces quantity and price.
type CartItem struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	AddedAt   time.Time       `json:"added_at"`
}

// Subtotal is quantity x snapshotted price for a single line.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Total is always computed from the lines, never stored.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// FindItemByProduct returns the index of the line holding productID, or -1.
func (c Cart) FindItemByProduct(productID string) int {
	for i, it := range c.Items {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}

// FindItem returns the index of the line with the given item id, or -1.
func (c Cart) FindItem(itemID string) int {
	for i, it := range c.Items {
		if it.ID == itemID {
			return i
		}
	}
	return -1
}
