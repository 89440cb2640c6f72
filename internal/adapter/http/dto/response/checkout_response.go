package response

import "archmarket/internal/usecase"

// CheckoutResponse is what the storefront needs to confirm the payment.
type CheckoutResponse struct {
	OrderID         string `json:"order_id"`
	ClientSecret    string `json:"client_secret"`
	Total           string `json:"total"`
	PaymentIntentID string `json:"payment_intent_id"`
}

func FromCheckoutResult(r usecase.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		OrderID:         r.OrderID,
		ClientSecret:    r.ClientSecret,
		Total:           r.Total.StringFixed(2),
		PaymentIntentID: r.PaymentIntentID,
	}
}
