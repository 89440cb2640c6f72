package notifications

import (
	"context"
	"errors"
	"fmt"
	"log"

	"archmarket/internal/domain/entities"
	"archmarket/internal/usecase/interfaces"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

var ErrMissingSendGridAPIKey = errors.New("missing SENDGRID_API_KEY")

// SendGridNotifier delivers transactional email through SendGrid.
//
// Attachments are referenced by object-storage key in the message body; the
// files themselves are not inlined, plan archives routinely exceed mail
// size limits.
type SendGridNotifier struct {
	client *sendgrid.Client
	sender string
}

var _ interfaces.INotificationService = (*SendGridNotifier)(nil)

func NewSendGridNotifier(apiKey, sender string) (*SendGridNotifier, error) {
	if apiKey == "" {
		log.Printf("[notification][sendgrid] missing SENDGRID_API_KEY")
		return nil, ErrMissingSendGridAPIKey
	}
	if sender == "" {
		sender = "no-reply@archmarket.local"
	}
	log.Printf("[notification][sendgrid] client initialized sender=%s", sender)
	return &SendGridNotifier{client: sendgrid.NewSendClient(apiKey), sender: sender}, nil
}

func (s *SendGridNotifier) Send(ctx context.Context, n entities.Notification) error {
	from := mail.NewEmail("", s.sender)
	to := mail.NewEmail("", n.Recipient)

	body := n.HTMLBody
	if len(n.Attachments) > 0 {
		body += "<p>Files:</p><ul>"
		for _, f := range n.Attachments {
			body += fmt.Sprintf("<li><a href=%q>%s</a></li>", f.Key, f.Filename)
		}
		body += "</ul>"
	}

	message := mail.NewSingleEmail(from, n.Subject, to, "", body)
	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		log.Printf("[notification][sendgrid] send failed err=%v", err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("[notification][sendgrid] send rejected status=%d", resp.StatusCode)
		return fmt.Errorf("sendgrid rejected message: status %d", resp.StatusCode)
	}

	log.Printf("[notification][sendgrid] sent subject=%q status=%d", n.Subject, resp.StatusCode)
	return nil
}
