package response

import (
	"time"

	"archmarket/internal/domain/entities"
	"archmarket/internal/usecase"
)

type OrderItemResponse struct {
	ID        string     `json:"id"`
	ProductID string     `json:"product_id"`
	Quantity  int        `json:"quantity"`
	Price     string     `json:"price"`
	ZipSent   bool       `json:"zip_sent"`
	ZipSentAt *time.Time `json:"zip_sent_at,omitempty"`
}

type OrderResponse struct {
	ID              string              `json:"id"`
	UserID          string              `json:"user_id"`
	CustomerEmail   string              `json:"customer_email,omitempty"`
	TotalAmount     string              `json:"total_amount"`
	Status          string              `json:"status"`
	PaymentIntentID string              `json:"payment_intent_id"`
	ZipFilesSent    bool                `json:"zip_files_sent"`
	Items           []OrderItemResponse `json:"items"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price.StringFixed(2),
			ZipSent:   it.ZipSent,
			ZipSentAt: it.ZipSentAt,
		})
	}
	return OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		CustomerEmail:   o.CustomerEmail,
		TotalAmount:     o.TotalAmount.StringFixed(2),
		Status:          string(o.Status),
		PaymentIntentID: o.PaymentIntentID,
		ZipFilesSent:    o.ZipFilesSent,
		Items:           items,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

// NotifyResponse summarizes a fulfillment run.
type NotifyResponse struct {
	OrderID   string `json:"order_id"`
	Recipient string `json:"recipient,omitempty"`
	FilesSent int    `json:"files_sent"`
}

func FromNotifyResult(r usecase.NotifyResult) NotifyResponse {
	return NotifyResponse{
		OrderID:   r.OrderID,
		Recipient: r.Recipient,
		FilesSent: r.FilesSent,
	}
}
