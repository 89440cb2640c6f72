package handlers

import (
	"io"
	"log"
	"net/http"

	"archmarket/internal/usecase"
	"archmarket/internal/usecase/interfaces"
	"archmarket/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidWebhookSignature = pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid webhook signature", http.StatusBadRequest)

// WebhookHandler receives payment provider webhooks.
//
// Signature verification runs before anything reads the payload: an
// unverifiable body gets a 400 so the provider retries, a verified one is
// always acknowledged with 200 unless our own processing fails.
type WebhookHandler struct {
	verifier interfaces.IWebhookVerifier
	usecase  usecase.IPaymentEventUseCase
}

func NewWebhookHandler(verifier interfaces.IWebhookVerifier, uc usecase.IPaymentEventUseCase) *WebhookHandler {
	return &WebhookHandler{verifier: verifier, usecase: uc}
}

func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(errInvalidWebhookSignature.HTTPStatus, errInvalidWebhookSignature.ToHTTPError())
		return
	}

	event, err := h.verifier.VerifyEvent(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		log.Printf("[webhook][handler] signature verification failed err=%v", err)
		c.JSON(errInvalidWebhookSignature.HTTPStatus, errInvalidWebhookSignature.ToHTTPError())
		return
	}

	if err := h.usecase.HandleEvent(c.Request.Context(), event); err != nil {
		log.Printf("[webhook][handler] event processing failed type=%s err=%v", event.Type, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
