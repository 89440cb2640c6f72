package usecase

import (
	"archmarket/internal/domain/entities"
	"archmarket/internal/usecase/interfaces"
	"context"
	"strings"
)

// IOrderUseCase exposes order history and the manual fulfillment re-send.
type IOrderUseCase interface {
	GetByID(ctx context.Context, userID, orderID string) (entities.Order, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Order, error)
	ResendFulfillment(ctx context.Context, userID, orderID string) (NotifyResult, error)
}

type OrderUseCase struct {
	orders      interfaces.IOrderRepository
	fulfillment IFulfillmentUseCase
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(orders interfaces.IOrderRepository, fulfillment IFulfillmentUseCase) *OrderUseCase {
	return &OrderUseCase{orders: orders, fulfillment: fulfillment}
}

func (u *OrderUseCase) GetByID(ctx context.Context, userID, orderID string) (entities.Order, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Order{}, ErrInvalidUserID
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	// Orders are private: another user's order looks like a missing one.
	if order.ID == "" || order.UserID != userID {
		return entities.Order{}, ErrOrderNotFound
	}
	return order, nil
}

func (u *OrderUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Order, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.orders.ListByUser(ctx, userID)
}

func (u *OrderUseCase) ResendFulfillment(ctx context.Context, userID, orderID string) (NotifyResult, error) {
	if _, err := u.GetByID(ctx, userID, orderID); err != nil {
		return NotifyResult{}, err
	}
	return u.fulfillment.Notify(ctx, orderID)
}
