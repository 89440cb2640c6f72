package response

import (
	"time"

	"archmarket/internal/domain/entities"
)

type ContactMessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func FromContactMessage(m entities.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt,
	}
}
