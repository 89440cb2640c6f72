package interfaces

import (
	"archmarket/internal/domain/entities"
	"context"
)

// IContactMessageRepository abstracts DynamoDB persistence for ContactMessage.
type IContactMessageRepository interface {
	Create(ctx context.Context, m entities.ContactMessage) (entities.ContactMessage, error)
	List(ctx context.Context) ([]entities.ContactMessage, error)
}
