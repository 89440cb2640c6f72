package payments

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"archmarket/internal/domain/entities"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"github.com/stripe/stripe-go/v82/webhook"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")
var ErrStripeGatewayNotConfigured = errors.New("stripe gateway not configured")

type StripeGateway struct {
	configured bool
	mockMode   bool
}

// NewStripeGateway wires the Stripe SDK from the secret key. In mock mode no
// external call is ever made; authorizations are fabricated locally.
func NewStripeGateway(secretKey string) (*StripeGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &StripeGateway{mockMode: true}, nil
	}

	if secretKey == "" {
		log.Printf("[payment][gateway] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}

	stripe.Key = secretKey
	log.Printf("[payment][gateway] Stripe client initialized")
	return &StripeGateway{configured: true}, nil
}

func (g *StripeGateway) Authorize(ctx context.Context, amountMinorUnits int64, currency string, metadata map[string]string) (entities.PaymentAuthorization, error) {
	if g != nil && g.mockMode {
		id := "pi_mock_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock authorize amount_minor=%d currency=%s id=%s", amountMinorUnits, currency, id)
		return entities.PaymentAuthorization{
			ID:           id,
			ClientSecret: id + "_secret",
		}, nil
	}

	if g == nil || !g.configured {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.PaymentAuthorization{}, ErrStripeGatewayNotConfigured
	}

	log.Printf("[payment][gateway] authorize start amount_minor=%d currency=%s", amountMinorUnits, currency)
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinorUnits),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		log.Printf("[payment][gateway] authorize failed err=%v", err)
		return entities.PaymentAuthorization{}, err
	}

	log.Printf("[payment][gateway] authorize success payment_intent_id=%s", pi.ID)
	return entities.PaymentAuthorization{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
	}, nil
}

// StripeWebhookVerifier checks webhook signatures and maps raw Stripe events
// into domain payment events.
type StripeWebhookVerifier struct {
	signingSecret string
}

func NewStripeWebhookVerifier(signingSecret string) *StripeWebhookVerifier {
	if signingSecret == "" {
		log.Printf("[payment][webhook] STRIPE_WEBHOOK_SECRET not set; all webhooks will be rejected")
	}
	return &StripeWebhookVerifier{signingSecret: signingSecret}
}

func (v *StripeWebhookVerifier) VerifyEvent(payload []byte, signatureHeader string) (entities.PaymentEvent, error) {
	ev, err := webhook.ConstructEvent(payload, signatureHeader, v.signingSecret)
	if err != nil {
		return entities.PaymentEvent{}, err
	}

	switch ev.Type {
	case "payment_intent.succeeded", "payment_intent.payment_failed":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(ev.Data.Raw, &pi); err != nil {
			return entities.PaymentEvent{}, err
		}
		return entities.PaymentEvent{
			Type:            entities.PaymentEventType(ev.Type),
			PaymentIntentID: pi.ID,
		}, nil

	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(ev.Data.Raw, &session); err != nil {
			return entities.PaymentEvent{}, err
		}
		out := entities.PaymentEvent{Type: entities.PaymentEventSessionCompleted}
		if session.PaymentIntent != nil {
			out.PaymentIntentID = session.PaymentIntent.ID
		}
		if session.CustomerDetails != nil {
			out.CustomerEmail = session.CustomerDetails.Email
		}
		return out, nil

	default:
		// Pass unknown-but-verified events through; the use case decides
		// whether to act on them.
		return entities.PaymentEvent{Type: entities.PaymentEventType(ev.Type)}, nil
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "STRIPE_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
