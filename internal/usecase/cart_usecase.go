package usecase

import (
	"archmarket/internal/domain/entities"
	"archmarket/internal/usecase/interfaces"
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidUserID    = errors.New("invalid user id")
	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrInvalidPrice     = errors.New("invalid price")
	ErrCartItemNotFound = errors.New("cart item not found")
)

// ICartUseCase exposes shopping cart operations.
//
// ActiveCart is get-or-create: every user always resolves to exactly one
// active cart. AddItem replaces quantity and price when the product is
// already in the cart.
type ICartUseCase interface {
	ActiveCart(ctx context.Context, userID string) (entities.Cart, error)
	AddItem(ctx context.Context, userID string, productID string, quantity int, plan entities.PlanType, unit entities.AreaUnit, customPrice *decimal.Decimal) (entities.Cart, error)
	UpdateItemQuantity(ctx context.Context, userID string, itemID string, quantity int) (entities.Cart, error)
	RemoveItem(ctx context.Context, userID string, itemID string) (entities.Cart, error)
}

type CartUseCase struct {
	repo     interfaces.ICartRepository
	products interfaces.IProductRepository

	// Per-user serialization of cart mutations. DynamoDB has no row locks,
	// so the single-active-cart invariant is enforced here.
	mu        sync.Mutex
	userLocks map[string]*sync.Mutex
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(repo interfaces.ICartRepository, products interfaces.IProductRepository) *CartUseCase {
	return &CartUseCase{
		repo:      repo,
		products:  products,
		userLocks: map[string]*sync.Mutex{},
	}
}

func (u *CartUseCase) lockUser(userID string) func() {
	u.mu.Lock()
	l, ok := u.userLocks[userID]
	if !ok {
		l = &sync.Mutex{}
		u.userLocks[userID] = l
	}
	u.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func (u *CartUseCase) ActiveCart(ctx context.Context, userID string) (entities.Cart, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Cart{}, ErrInvalidUserID
	}

	unlock := u.lockUser(userID)
	defer unlock()

	return u.activeCartLocked(ctx, userID)
}

// activeCartLocked resolves the user's single active cart: deactivate
// everything, then reactivate the most recent cart or create a fresh one.
// Callers must hold the user lock.
func (u *CartUseCase) activeCartLocked(ctx context.Context, userID string) (entities.Cart, error) {
	if err := u.repo.DeactivateAllForUser(ctx, userID); err != nil {
		return entities.Cart{}, err
	}

	latest, err := u.repo.GetLatestByUser(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}
	if latest.ID != "" {
		return u.repo.SetActive(ctx, latest.ID, true)
	}

	now := time.Now().UTC()
	c := entities.Cart{
		ID:        uuid.NewString(),
		UserID:    userID,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, c)
}

func (u *CartUseCase) AddItem(ctx context.Context, userID string, productID string, quantity int, plan entities.PlanType, unit entities.AreaUnit, customPrice *decimal.Decimal) (entities.Cart, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Cart{}, ErrInvalidUserID
	}
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.Cart{}, ErrInvalidProductID
	}
	if quantity <= 0 {
		return entities.Cart{}, ErrInvalidQuantity
	}
	if customPrice != nil && customPrice.IsNegative() {
		return entities.Cart{}, ErrInvalidPrice
	}

	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return entities.Cart{}, err
	}
	if product.ID == "" {
		return entities.Cart{}, ErrProductNotFound
	}

	price := product.PlanPrice(plan, unit)
	if customPrice != nil {
		price = *customPrice
	}

	unlock := u.lockUser(userID)
	defer unlock()

	cart, err := u.activeCartLocked(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}

	item := entities.CartItem{
		ID:        uuid.NewString(),
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
		AddedAt:   time.Now().UTC(),
	}
	// Re-adding a product replaces the whole line, keeping its item id.
	if idx := cart.FindItemByProduct(productID); idx >= 0 {
		item.ID = cart.Items[idx].ID
		item.AddedAt = cart.Items[idx].AddedAt
	}

	return u.repo.PutItem(ctx, cart.ID, item)
}

func (u *CartUseCase) UpdateItemQuantity(ctx context.Context, userID string, itemID string, quantity int) (entities.Cart, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Cart{}, ErrInvalidUserID
	}
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.Cart{}, ErrCartItemNotFound
	}

	unlock := u.lockUser(userID)
	defer unlock()

	cart, err := u.activeCartLocked(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}

	idx := cart.FindItem(itemID)
	if idx < 0 {
		return entities.Cart{}, ErrCartItemNotFound
	}

	// Zero or negative quantity removes the line.
	if quantity <= 0 {
		return u.repo.DeleteItem(ctx, cart.ID, itemID)
	}

	item := cart.Items[idx]
	item.Quantity = quantity
	return u.repo.PutItem(ctx, cart.ID, item)
}

func (u *CartUseCase) RemoveItem(ctx context.Context, userID string, itemID string) (entities.Cart, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Cart{}, ErrInvalidUserID
	}
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.Cart{}, ErrCartItemNotFound
	}

	unlock := u.lockUser(userID)
	defer unlock()

	cart, err := u.activeCartLocked(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}
	if cart.FindItem(itemID) < 0 {
		return entities.Cart{}, ErrCartItemNotFound
	}

	return u.repo.DeleteItem(ctx, cart.ID, itemID)
}
