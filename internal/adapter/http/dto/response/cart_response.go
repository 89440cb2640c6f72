package response

import (
	"time"

	"archmarket/internal/domain/entities"
)

type CartItemResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Price     string    `json:"price"`
	Subtotal  string    `json:"subtotal"`
	AddedAt   time.Time `json:"added_at"`
}

type CartResponse struct {
	ID        string             `json:"id"`
	UserID    string             `json:"user_id"`
	IsActive  bool               `json:"is_active"`
	Items     []CartItemResponse `json:"items"`
	Total     string             `json:"total"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func FromCart(c entities.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, CartItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price.StringFixed(2),
			Subtotal:  it.Subtotal().StringFixed(2),
			AddedAt:   it.AddedAt,
		})
	}
	return CartResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		IsActive:  c.IsActive,
		Items:     items,
		Total:     c.Total().StringFixed(2),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
