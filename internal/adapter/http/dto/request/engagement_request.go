package request

import (
	"strings"

	"archmarket/internal/domain/entities"
)

// ToggleEngagementRequest flips one engagement flag for a visitor.
type ToggleEngagementRequest struct {
	VisitorID string `json:"visitor_id" binding:"required"`
	Toggle    string `json:"toggle" binding:"required"`
}

func (r ToggleEngagementRequest) ResolveVisitorID() string {
	return strings.TrimSpace(r.VisitorID)
}

func (r ToggleEngagementRequest) ResolveToggle() entities.ToggleKind {
	return entities.ToggleKind(strings.ToLower(strings.TrimSpace(r.Toggle)))
}
