package interfaces

import (
	"archmarket/internal/domain/entities"
	"context"
)

// INotificationService abstracts outbound email (SendGrid).
type INotificationService interface {
	Send(ctx context.Context, n entities.Notification) error
}
