package entities

// FileRef points at a deliverable file in object storage.
type FileRef struct {
	Filename string `json:"filename"`
	Key      string `json:"key"`
}

// Notification is an outbound email handed to the notification service.
type Notification struct {
	Recipient   string    `json:"recipient"`
	Subject     string    `json:"subject"`
	HTMLBody    string    `json:"html_body"`
	Attachments []FileRef `json:"attachments,omitempty"`
}
