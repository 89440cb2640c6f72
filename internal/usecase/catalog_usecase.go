package usecase

import (
	"archmarket/internal/domain/entities"
	"archmarket/internal/usecase/interfaces"
	"context"
	"errors"
	"strings"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProductID = errors.New("invalid product id")
)

// ICatalogUseCase exposes the public product catalog.
type ICatalogUseCase interface {
	GetProduct(ctx context.Context, id string) (entities.Product, error)
	ListProducts(ctx context.Context) ([]entities.Product, error)
}

type CatalogUseCase struct {
	repo interfaces.IProductRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.IProductRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *CatalogUseCase) ListProducts(ctx context.Context) ([]entities.Product, error) {
	products, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	// Inactive products stay out of the public listing but remain
	// addressable by id for order history views.
	active := make([]entities.Product, 0, len(products))
	for _, p := range products {
		if p.IsActive {
			active = append(active, p)
		}
	}
	return active, nil
}
