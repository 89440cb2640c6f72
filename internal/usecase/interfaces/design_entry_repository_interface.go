package interfaces

import (
	"archmarket/internal/domain/entities"
	"context"
)

// IDesignEntryRepository abstracts DynamoDB persistence for DesignEntry.
// Entries are append-only; there is no update operation on purpose.
type IDesignEntryRepository interface {
	Create(ctx context.Context, e entities.DesignEntry) (entities.DesignEntry, error)
	List(ctx context.Context) ([]entities.DesignEntry, error)
}
