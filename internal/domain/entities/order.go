package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle of a marketplace order.
//
// Domain notes:
//   - Orders are created "pending" at checkout and completed by the payment
//     webhook, never by the checkout path itself.
//   - "completed" is the canonical payment-confirmed state; "paid" is kept
//     for rows written by earlier revisions and counts as confirmed too.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusFailed     OrderStatus = "failed"
)

// Terminal reports whether no further transitions are allowed from s.
func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderStatusCompleted, OrderStatusCancelled, OrderStatusFailed:
		return true
	}
	return false
}

// PaymentConfirmed reports whether s means the payment already went through.
func (s OrderStatus) PaymentConfirmed() bool {
	return s == OrderStatusCompleted || s == OrderStatusPaid
}

// Order is a marketplace order persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id, sort key created_at
//   - GSI2 (payment_intent_id-index): payment_intent_id
//
// Email fields:
//   - UserEmail is the buyer's registered email, snapshotted at checkout.
//   - CustomerEmail is the address the payment gateway reported at payment
//     time and takes precedence for fulfillment.
type Order struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	UserEmail     string          `json:"user_email"`
	CustomerEmail string          `json:"customer_email"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        OrderStatus     `json:"status"`

	PaymentIntentID string `json:"payment_intent_id"`
	ZipFilesSent    bool   `json:"zip_files_sent"`

	Items []OrderItem `json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderItem is one purchased line, copied from the cart at checkout.
type OrderItem struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	ZipSent   bool            `json:"zip_sent"`
	ZipSentAt *time.Time      `json:"zip_sent_at,omitempty"`
}

// RecipientEmail resolves the fulfillment recipient: the gateway-reported
// address wins over the registered one. Empty means no recipient is known.
func (o Order) RecipientEmail() string {
	if o.CustomerEmail != "" {
		return o.CustomerEmail
	}
	return o.UserEmail
}

// ItemsTotal recomputes the total from the purchased lines.
func (o Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}
