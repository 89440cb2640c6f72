package entities

import "time"

// ContactMessageStatus tracks how far the team got with an inquiry.
type ContactMessageStatus string

const (
	ContactMessageStatusNew       ContactMessageStatus = "new"
	ContactMessageStatusRead      ContactMessageStatus = "read"
	ContactMessageStatusResponded ContactMessageStatus = "responded"
	ContactMessageStatusArchived  ContactMessageStatus = "archived"
)

// ContactMessage is a contact-form inquiry persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
type ContactMessage struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	Email           string               `json:"email"`
	Phone           string               `json:"phone,omitempty"`
	ProjectLocation string               `json:"project_location,omitempty"`
	Timeline        string               `json:"timeline,omitempty"`
	Comments        string               `json:"comments"`
	Status          ContactMessageStatus `json:"status"`
	CreatedAt       time.Time            `json:"created_at"`
}
