package interfaces

import (
	"archmarket/internal/domain/entities"
	"context"
)

// IEngagementRepository abstracts DynamoDB persistence for Engagement.
type IEngagementRepository interface {
	Get(ctx context.Context, kind entities.EntityKind, entityID, visitorID string) (entities.Engagement, error)
	Put(ctx context.Context, e entities.Engagement) (entities.Engagement, error)
	Counts(ctx context.Context, kind entities.EntityKind, entityID string) (entities.EngagementCounts, error)
}
