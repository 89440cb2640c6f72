package interfaces

import (
	"archmarket/internal/domain/entities"
	"context"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// CreateWithItems persists the order and deactivates the source cart in a
// single transaction: a half-checked-out state (order without deactivated
// cart, or the reverse) must be impossible.
type IOrderRepository interface {
	CreateWithItems(ctx context.Context, o entities.Order, deactivateCartID string) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (entities.Order, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	SetCustomerEmail(ctx context.Context, id string, email string) (entities.Order, error)
	MarkZipSent(ctx context.Context, id string, itemIDs []string) (entities.Order, error)
}
