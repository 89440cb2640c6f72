package interfaces

import (
	"archmarket/internal/domain/entities"
	"context"
)

// ICartRepository abstracts DynamoDB persistence for Cart.
//
// The cart use case must be able to:
//   - resolve a user's active cart, or the most recent one for reactivation
//   - flip active flags (single-active invariant is enforced by the use case)
//   - put/replace and delete individual lines
type ICartRepository interface {
	Create(ctx context.Context, c entities.Cart) (entities.Cart, error)
	GetByID(ctx context.Context, id string) (entities.Cart, error)
	GetActiveByUser(ctx context.Context, userID string) (entities.Cart, error)
	GetLatestByUser(ctx context.Context, userID string) (entities.Cart, error)
	SetActive(ctx context.Context, cartID string, active bool) (entities.Cart, error)
	DeactivateAllForUser(ctx context.Context, userID string) error
	PutItem(ctx context.Context, cartID string, item entities.CartItem) (entities.Cart, error)
	DeleteItem(ctx context.Context, cartID string, itemID string) (entities.Cart, error)
}
