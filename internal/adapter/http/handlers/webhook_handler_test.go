package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"archmarket/internal/adapter/http/handlers/mocks"
	"archmarket/internal/domain/entities"
	mock_interfaces "archmarket/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWebhookHandler_HandleWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad signature stops before processing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		verifier := mock_interfaces.NewMockIWebhookVerifier(ctrl)
		uc := mocks.NewMockIPaymentEventUseCase(ctrl)
		h := NewWebhookHandler(verifier, uc)

		r := gin.New()
		r.POST("/v1/payments/webhook", h.HandleWebhook)

		payload := []byte(`{"type":"payment_intent.succeeded"}`)
		verifier.EXPECT().VerifyEvent(payload, "t=bad").Return(entities.PaymentEvent{}, errors.New("signature mismatch"))
		// No usecase expectation: an unverified payload must never be processed.

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", bytes.NewBuffer(payload))
		req.Header.Set("Stripe-Signature", "t=bad")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("processing failure returns 500 for redelivery", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		verifier := mock_interfaces.NewMockIWebhookVerifier(ctrl)
		uc := mocks.NewMockIPaymentEventUseCase(ctrl)
		h := NewWebhookHandler(verifier, uc)

		r := gin.New()
		r.POST("/v1/payments/webhook", h.HandleWebhook)

		event := entities.PaymentEvent{Type: entities.PaymentEventSucceeded, PaymentIntentID: "pi_1"}
		verifier.EXPECT().VerifyEvent(gomock.Any(), "t=good").Return(event, nil)
		uc.EXPECT().HandleEvent(gomock.Any(), event).Return(errors.New("db down"))

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", bytes.NewBufferString(`{}`))
		req.Header.Set("Stripe-Signature", "t=good")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("verified event is acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		verifier := mock_interfaces.NewMockIWebhookVerifier(ctrl)
		uc := mocks.NewMockIPaymentEventUseCase(ctrl)
		h := NewWebhookHandler(verifier, uc)

		r := gin.New()
		r.POST("/v1/payments/webhook", h.HandleWebhook)

		event := entities.PaymentEvent{Type: entities.PaymentEventSessionCompleted, PaymentIntentID: "pi_1", CustomerEmail: "ana@example.com"}
		verifier.EXPECT().VerifyEvent(gomock.Any(), "t=good").Return(event, nil)
		uc.EXPECT().HandleEvent(gomock.Any(), event).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", bytes.NewBufferString(`{}`))
		req.Header.Set("Stripe-Signature", "t=good")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
