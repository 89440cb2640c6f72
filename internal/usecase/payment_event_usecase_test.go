package usecase

import (
	"context"
	"errors"
	"testing"

	"archmarket/internal/domain/entities"
	mock_interfaces "archmarket/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// fakeFulfillment counts Notify calls so redelivery tests can assert the
// email goes out exactly once.
type fakeFulfillment struct {
	calls []string
	err   error
}

func (f *fakeFulfillment) Notify(_ context.Context, orderID string) (NotifyResult, error) {
	f.calls = append(f.calls, orderID)
	if f.err != nil {
		return NotifyResult{}, f.err
	}
	return NotifyResult{OrderID: orderID, FilesSent: 1}, nil
}

func TestPaymentEventUseCase_Succeeded(t *testing.T) {
	t.Run("completes a pending order and notifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		fulfillment := &fakeFulfillment{}
		uc := NewPaymentEventUseCase(orders, fulfillment)

		pending := entities.Order{ID: "o-1", Status: entities.OrderStatusPending, PaymentIntentID: "pi_1"}
		orders.EXPECT().GetByPaymentIntentID(gomock.Any(), "pi_1").Return(pending, nil)
		orders.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusCompleted).Return(entities.Order{ID: "o-1", Status: entities.OrderStatusCompleted}, nil)

		err := uc.HandleEvent(context.Background(), entities.PaymentEvent{Type: entities.PaymentEventSucceeded, PaymentIntentID: "pi_1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(fulfillment.calls) != 1 || fulfillment.calls[0] != "o-1" {
			t.Fatalf("expected one fulfillment call, got %v", fulfillment.calls)
		}
	})

	t.Run("redelivery for a confirmed order is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		fulfillment := &fakeFulfillment{}
		uc := NewPaymentEventUseCase(orders, fulfillment)

		completed := entities.Order{ID: "o-1", Status: entities.OrderStatusCompleted, PaymentIntentID: "pi_1"}
		orders.EXPECT().GetByPaymentIntentID(gomock.Any(), "pi_1").Return(completed, nil)

		err := uc.HandleEvent(context.Background(), entities.PaymentEvent{Type: entities.PaymentEventSucceeded, PaymentIntentID: "pi_1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(fulfillment.calls) != 0 {
			t.Fatalf("expected no fulfillment on redelivery, got %v", fulfillment.calls)
		}
	})

	t.Run("legacy paid status counts as confirmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		fulfillment := &fakeFulfillment{}
		uc := NewPaymentEventUseCase(orders, fulfillment)

		paid := entities.Order{ID: "o-1", Status: entities.OrderStatusPaid, PaymentIntentID: "pi_1"}
		orders.EXPECT().GetByPaymentIntentID(gomock.Any(), "pi_1").Return(paid, nil)

		if err := uc.HandleEvent(context.Background(), entities.PaymentEvent{Type: entities.PaymentEventSucceeded, PaymentIntentID: "pi_1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(fulfillment.calls) != 0 {
			t.Fatalf("expected no fulfillment, got %v", fulfillment.calls)
		}
	})

	t.Run("success for a failed order is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewPaymentEventUseCase(orders, &fakeFulfillment{})

		failed := entities.Order{ID: "o-1", Status: entities.OrderStatusFailed, PaymentIntentID: "pi_1"}
		orders.EXPECT().GetByPaymentIntentID(gomock.Any(), "pi_1").Return(failed, nil)

		if err := uc.HandleEvent(context.Background(), entities.PaymentEvent{Type: entities.PaymentEventSucceeded, PaymentIntentID: "pi_1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("fulfillment failure does not fail the webhook", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		fulfillment := &fakeFulfillment{err: errors.New("sendgrid down")}
		uc := NewPaymentEventUseCase(orders, fulfillment)

		pending := entities.Order{ID: "o-1", Status: entities.OrderStatusPending, PaymentIntentID: "pi_1"}
		orders.EXPECT().GetByPaymentIntentID(gomock.Any(), "pi_1").Return(pending, nil)
		orders.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusCompleted).Return(entities.Order{ID: "o-1", Status: entities.OrderStatusCompleted}, nil)

		if err := uc.HandleEvent(context.Background(), entities.PaymentEvent{Type: entities.PaymentEventSucceeded, PaymentIntentID: "pi_1"}); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})
}

func TestPaymentEventUseCase_Failed(t *testing.T) {
	t.Run("fails a pending order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewPaymentEventUseCase(orders, &fakeFulfillment{})

		pending := entities.Order{ID: "o-1", Status: entities.OrderStatusPending, PaymentIntentID: "pi_1"}
		orders.EXPECT().GetByPaymentIntentID(gomock.Any(), "pi_1").Return(pending, nil)
		orders.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusFailed).Return(entities.Order{ID: "o-1", Status: entities.OrderStatusFailed}, nil)

		if err := uc.HandleEvent(context.Background(), entities.PaymentEvent{Type: entities.PaymentEventFailed, PaymentIntentID: "pi_1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("failure after completion is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewPaymentEventUseCase(orders, &fakeFulfillment{})

		completed := entities.Order{ID: "o-1", Status: entities.OrderStatusCompleted, PaymentIntentID: "pi_1"}
		orders.EXPECT().GetByPaymentIntentID(gomock.Any(), "pi_1").Return(completed, nil)

		if err := uc.HandleEvent(context.Background(), entities.PaymentEvent{Type: entities.PaymentEventFailed, PaymentIntentID: "pi_1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentEventUseCase_SessionCompleted(t *testing.T) {
	t.Run("captures the gateway email before completing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		fulfillment := &fakeFulfillment{}
		uc := NewPaymentEventUseCase(orders, fulfillment)

		pending := entities.Order{ID: "o-1", Status: entities.OrderStatusPending, PaymentIntentID: "pi_1", UserEmail: "ana@example.com"}
		orders.EXPECT().GetByPaymentIntentID(gomock.Any(), "pi_1").Return(pending, nil).Times(2)
		orders.EXPECT().SetCustomerEmail(gomock.Any(), "o-1", "card-holder@example.com").Return(pending, nil)
		orders.EXPECT().UpdateStatus(gomock.Any(), "o-1", entities.OrderStatusCompleted).Return(entities.Order{ID: "o-1", Status: entities.OrderStatusCompleted}, nil)

		err := uc.HandleEvent(context.Background(), entities.PaymentEvent{
			Type:            entities.PaymentEventSessionCompleted,
			PaymentIntentID: "pi_1",
			CustomerEmail:   "card-holder@example.com",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(fulfillment.calls) != 1 {
			t.Fatalf("expected fulfillment, got %v", fulfillment.calls)
		}
	})

	t.Run("unchanged email skips the write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewPaymentEventUseCase(orders, &fakeFulfillment{})

		order := entities.Order{ID: "o-1", Status: entities.OrderStatusCompleted, PaymentIntentID: "pi_1", CustomerEmail: "card-holder@example.com"}
		orders.EXPECT().GetByPaymentIntentID(gomock.Any(), "pi_1").Return(order, nil).Times(2)

		err := uc.HandleEvent(context.Background(), entities.PaymentEvent{
			Type:            entities.PaymentEventSessionCompleted,
			PaymentIntentID: "pi_1",
			CustomerEmail:   "card-holder@example.com",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentEventUseCase_Edges(t *testing.T) {
	t.Run("unknown payment reference is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewPaymentEventUseCase(orders, &fakeFulfillment{})

		orders.EXPECT().GetByPaymentIntentID(gomock.Any(), "pi_unknown").Return(entities.Order{}, nil)

		if err := uc.HandleEvent(context.Background(), entities.PaymentEvent{Type: entities.PaymentEventSucceeded, PaymentIntentID: "pi_unknown"}); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("event without payment reference is ignored", func(t *testing.T) {
		uc := NewPaymentEventUseCase(nil, &fakeFulfillment{})
		if err := uc.HandleEvent(context.Background(), entities.PaymentEvent{Type: entities.PaymentEventSucceeded}); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("unhandled event type is acknowledged", func(t *testing.T) {
		uc := NewPaymentEventUseCase(nil, &fakeFulfillment{})
		if err := uc.HandleEvent(context.Background(), entities.PaymentEvent{Type: "charge.refunded", PaymentIntentID: "pi_1"}); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("lookup error surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewPaymentEventUseCase(orders, &fakeFulfillment{})

		orders.EXPECT().GetByPaymentIntentID(gomock.Any(), "pi_1").Return(entities.Order{}, errors.New("db"))

		if err := uc.HandleEvent(context.Background(), entities.PaymentEvent{Type: entities.PaymentEventSucceeded, PaymentIntentID: "pi_1"}); err == nil {
			t.Fatalf("expected error")
		}
	})
}
