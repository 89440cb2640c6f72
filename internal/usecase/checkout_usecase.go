package usecase

import (
	"archmarket/internal/domain/entities"
	"archmarket/internal/usecase/interfaces"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNoActiveCart              = errors.New("no active cart")
	ErrEmptyCart                 = errors.New("cart is empty")
	ErrPaymentGatewayUnavailable = errors.New("payment gateway unavailable")
	ErrSandboxCheckoutDisabled   = errors.New("sandbox checkout disabled")
)

const checkoutCurrency = "usd"

// gatewayTimeout bounds the synchronous call to the payment provider so a
// hung provider cannot pin the checkout request.
const gatewayTimeout = 15 * time.Second

// CheckoutResult is returned to the client so it can confirm the payment.
type CheckoutResult struct {
	OrderID         string          `json:"order_id"`
	ClientSecret    string          `json:"client_secret"`
	Total           decimal.Decimal `json:"total"`
	PaymentIntentID string          `json:"payment_intent_id"`
}

// ICheckoutUseCase turns the active cart into a pending order.
//
// Order of operations is payment-first: the gateway authorization happens
// before any write, so a gateway failure leaves no order behind. The order
// put and the cart deactivation then commit in one transaction.
type ICheckoutUseCase interface {
	Checkout(ctx context.Context, userID, userEmail string) (CheckoutResult, error)
	SimulateCompletion(ctx context.Context, userID, userEmail string) (CheckoutResult, error)
}

type CheckoutUseCase struct {
	carts   interfaces.ICartRepository
	orders  interfaces.IOrderRepository
	gateway interfaces.IPaymentGateway
	events  IPaymentEventUseCase
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(carts interfaces.ICartRepository, orders interfaces.IOrderRepository, gateway interfaces.IPaymentGateway, events IPaymentEventUseCase) *CheckoutUseCase {
	return &CheckoutUseCase{carts: carts, orders: orders, gateway: gateway, events: events}
}

func (u *CheckoutUseCase) Checkout(ctx context.Context, userID, userEmail string) (CheckoutResult, error) {
	log.Printf("[checkout][usecase] start user_id=%s", userID)
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return CheckoutResult{}, ErrInvalidUserID
	}

	cart, err := u.carts.GetActiveByUser(ctx, userID)
	if err != nil {
		return CheckoutResult{}, err
	}
	if cart.ID == "" {
		log.Printf("[checkout][usecase] no active cart user_id=%s", userID)
		return CheckoutResult{}, ErrNoActiveCart
	}
	if len(cart.Items) == 0 {
		log.Printf("[checkout][usecase] empty cart user_id=%s cart_id=%s", userID, cart.ID)
		return CheckoutResult{}, ErrEmptyCart
	}
	// Startup tolerates a missing STRIPE_SECRET_KEY; checkout does not.
	if u.gateway == nil {
		log.Printf("[checkout][usecase] gateway not configured user_id=%s cart_id=%s", userID, cart.ID)
		return CheckoutResult{}, ErrPaymentGatewayUnavailable
	}

	total := cart.Total()
	amount := total.Shift(2).Round(0).IntPart()
	log.Printf("[checkout][usecase] authorizing user_id=%s cart_id=%s total=%s amount_minor=%d", userID, cart.ID, total.String(), amount)

	gwCtx, cancel := context.WithTimeout(ctx, gatewayTimeout)
	defer cancel()
	auth, err := u.gateway.Authorize(gwCtx, amount, checkoutCurrency, map[string]string{
		"cart_id":    cart.ID,
		"user_id":    userID,
		"user_email": userEmail,
	})
	if err != nil {
		log.Printf("[checkout][usecase] gateway failed user_id=%s cart_id=%s err=%v", userID, cart.ID, err)
		return CheckoutResult{}, fmt.Errorf("%w: %v", ErrPaymentGatewayUnavailable, err)
	}

	now := time.Now().UTC()
	order := entities.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		UserEmail:       strings.TrimSpace(userEmail),
		TotalAmount:     total,
		Status:          entities.OrderStatusPending,
		PaymentIntentID: auth.ID,
		Items:           orderItemsFromCart(cart),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.orders.CreateWithItems(ctx, order, cart.ID)
	if err != nil {
		log.Printf("[checkout][usecase] order create failed user_id=%s cart_id=%s payment_intent_id=%s err=%v", userID, cart.ID, auth.ID, err)
		return CheckoutResult{}, err
	}

	log.Printf("[checkout][usecase] success user_id=%s order_id=%s payment_intent_id=%s", userID, created.ID, auth.ID)
	return CheckoutResult{
		OrderID:         created.ID,
		ClientSecret:    auth.ClientSecret,
		Total:           total,
		PaymentIntentID: auth.ID,
	}, nil
}

// SimulateCompletion runs a normal checkout and immediately feeds a
// synthetic success event through the payment-event pipeline. Gated by env
// so it can never run in production.
func (u *CheckoutUseCase) SimulateCompletion(ctx context.Context, userID, userEmail string) (CheckoutResult, error) {
	if !isSandboxCheckoutEnabled() {
		return CheckoutResult{}, ErrSandboxCheckoutDisabled
	}

	res, err := u.Checkout(ctx, userID, userEmail)
	if err != nil {
		return CheckoutResult{}, err
	}

	log.Printf("[checkout][usecase] sandbox completion order_id=%s payment_intent_id=%s", res.OrderID, res.PaymentIntentID)
	if err := u.events.HandleEvent(ctx, entities.PaymentEvent{
		Type:            entities.PaymentEventSucceeded,
		PaymentIntentID: res.PaymentIntentID,
	}); err != nil {
		return CheckoutResult{}, err
	}
	return res, nil
}

func orderItemsFromCart(cart entities.Cart) []entities.OrderItem {
	items := make([]entities.OrderItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, entities.OrderItem{
			ID:        uuid.NewString(),
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return items
}

func isSandboxCheckoutEnabled() bool {
	for _, key := range []string{"CHECKOUT_SANDBOX", "PAYMENT_GATEWAY_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
