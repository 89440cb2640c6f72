package request

import "archmarket/internal/domain/entities"

// ContactRequest is a storefront contact-form submission.
type ContactRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Phone           string `json:"phone"`
	ProjectLocation string `json:"project_location"`
	Timeline        string `json:"timeline"`
	Comments        string `json:"comments" binding:"required"`
}

func (r ContactRequest) ToEntity() entities.ContactMessage {
	return entities.ContactMessage{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		ProjectLocation: r.ProjectLocation,
		Timeline:        r.Timeline,
		Comments:        r.Comments,
	}
}
