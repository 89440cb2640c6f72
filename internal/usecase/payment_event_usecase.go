package usecase

import (
	"archmarket/internal/domain/entities"
	"archmarket/internal/usecase/interfaces"
	"context"
	"errors"
	"log"
	"strings"
)

var (
	ErrUnsupportedPaymentEvent = errors.New("unsupported payment event")
)

// IPaymentEventUseCase applies verified payment webhook events to orders.
//
// Events are treated as at-least-once: redeliveries and out-of-order
// arrivals must be no-ops, never double-completions.
type IPaymentEventUseCase interface {
	HandleEvent(ctx context.Context, ev entities.PaymentEvent) error
}

type PaymentEventUseCase struct {
	orders      interfaces.IOrderRepository
	fulfillment IFulfillmentUseCase
}

var _ IPaymentEventUseCase = (*PaymentEventUseCase)(nil)

func NewPaymentEventUseCase(orders interfaces.IOrderRepository, fulfillment IFulfillmentUseCase) *PaymentEventUseCase {
	return &PaymentEventUseCase{orders: orders, fulfillment: fulfillment}
}

func (u *PaymentEventUseCase) HandleEvent(ctx context.Context, ev entities.PaymentEvent) error {
	log.Printf("[payment-event][usecase] received type=%s payment_intent_id=%s", ev.Type, ev.PaymentIntentID)

	switch ev.Type {
	case entities.PaymentEventSucceeded:
		return u.handleSucceeded(ctx, ev.PaymentIntentID)
	case entities.PaymentEventFailed:
		return u.handleFailed(ctx, ev.PaymentIntentID)
	case entities.PaymentEventSessionCompleted:
		return u.handleSessionCompleted(ctx, ev)
	default:
		// Unknown event types are acknowledged so the provider stops
		// redelivering them.
		log.Printf("[payment-event][usecase] ignoring unhandled type=%s", ev.Type)
		return nil
	}
}

func (u *PaymentEventUseCase) handleSucceeded(ctx context.Context, paymentIntentID string) error {
	order, ok, err := u.lookup(ctx, paymentIntentID)
	if err != nil || !ok {
		return err
	}

	if order.Status.PaymentConfirmed() {
		log.Printf("[payment-event][usecase] already confirmed order_id=%s status=%s", order.ID, order.Status)
		return nil
	}
	if order.Status.Terminal() {
		log.Printf("[payment-event][usecase] terminal order, ignoring success order_id=%s status=%s", order.ID, order.Status)
		return nil
	}

	updated, err := u.orders.UpdateStatus(ctx, order.ID, entities.OrderStatusCompleted)
	if err != nil {
		return err
	}
	log.Printf("[payment-event][usecase] order completed order_id=%s", updated.ID)

	// Fulfillment is best-effort here: a failed email must not fail the
	// webhook, the manual re-send endpoint covers recovery.
	if _, err := u.fulfillment.Notify(ctx, updated.ID); err != nil {
		log.Printf("[payment-event][usecase] fulfillment failed order_id=%s err=%v", updated.ID, err)
	}
	return nil
}

func (u *PaymentEventUseCase) handleFailed(ctx context.Context, paymentIntentID string) error {
	order, ok, err := u.lookup(ctx, paymentIntentID)
	if err != nil || !ok {
		return err
	}

	if order.Status != entities.OrderStatusPending {
		log.Printf("[payment-event][usecase] ignoring failure for non-pending order_id=%s status=%s", order.ID, order.Status)
		return nil
	}

	if _, err := u.orders.UpdateStatus(ctx, order.ID, entities.OrderStatusFailed); err != nil {
		return err
	}
	log.Printf("[payment-event][usecase] order failed order_id=%s", order.ID)
	return nil
}

func (u *PaymentEventUseCase) handleSessionCompleted(ctx context.Context, ev entities.PaymentEvent) error {
	order, ok, err := u.lookup(ctx, ev.PaymentIntentID)
	if err != nil || !ok {
		return err
	}

	// The gateway-reported address is authoritative for fulfillment.
	if email := strings.TrimSpace(ev.CustomerEmail); email != "" && email != order.CustomerEmail {
		if _, err := u.orders.SetCustomerEmail(ctx, order.ID, email); err != nil {
			return err
		}
		log.Printf("[payment-event][usecase] customer email captured order_id=%s", order.ID)
	}

	return u.handleSucceeded(ctx, ev.PaymentIntentID)
}

// lookup resolves the order for a payment reference. Unknown references are
// logged and swallowed: failing the webhook would only cause pointless
// redeliveries.
func (u *PaymentEventUseCase) lookup(ctx context.Context, paymentIntentID string) (entities.Order, bool, error) {
	paymentIntentID = strings.TrimSpace(paymentIntentID)
	if paymentIntentID == "" {
		log.Printf("[payment-event][usecase] event without payment reference, ignoring")
		return entities.Order{}, false, nil
	}

	order, err := u.orders.GetByPaymentIntentID(ctx, paymentIntentID)
	if err != nil {
		return entities.Order{}, false, err
	}
	if order.ID == "" {
		log.Printf("[payment-event][usecase] no order for payment_intent_id=%s, ignoring", paymentIntentID)
		return entities.Order{}, false, nil
	}
	return order, true, nil
}
