package interfaces

import (
	"archmarket/internal/domain/entities"
	"context"
)

// IPaymentGateway abstracts the external payment provider (Stripe).
//
// Authorize creates a payment intent for the given amount in minor units
// (cents). The returned authorization carries the client secret the browser
// needs to confirm the payment; the service itself never captures funds.
type IPaymentGateway interface {
	Authorize(ctx context.Context, amountMinorUnits int64, currency string, metadata map[string]string) (entities.PaymentAuthorization, error)
}

// IWebhookVerifier validates and parses incoming payment webhooks.
//
// VerifyEvent must reject any payload whose signature does not check out
// before looking at its contents.
type IWebhookVerifier interface {
	VerifyEvent(payload []byte, signatureHeader string) (entities.PaymentEvent, error)
}
