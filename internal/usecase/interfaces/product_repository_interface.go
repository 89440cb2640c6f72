package interfaces

import (
	"archmarket/internal/domain/entities"
	"context"
)

// IProductRepository abstracts DynamoDB persistence for Product.
type IProductRepository interface {
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
}
