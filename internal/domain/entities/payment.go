package entities

// PaymentAuthorization is the result of creating a payment with the gateway.
// ClientSecret goes back to the browser so the customer can confirm the
// payment client-side.
type PaymentAuthorization struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// PaymentEventType is a verified webhook event type. Values mirror the
// gateway's wire names.
type PaymentEventType string

const (
	PaymentEventSucceeded        PaymentEventType = "payment_intent.succeeded"
	PaymentEventFailed           PaymentEventType = "payment_intent.payment_failed"
	PaymentEventSessionCompleted PaymentEventType = "checkout.session.completed"
)

// PaymentEvent is a signature-verified, already-parsed webhook event.
//
// CustomerEmail is only set for checkout.session.completed events, where the
// gateway reports the address the customer actually paid with.
type PaymentEvent struct {
	Type            PaymentEventType `json:"type"`
	PaymentIntentID string           `json:"payment_intent_id"`
	CustomerEmail   string           `json:"customer_email,omitempty"`
}
