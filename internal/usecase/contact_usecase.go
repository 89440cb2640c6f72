package usecase

import (
	"archmarket/internal/domain/entities"
	"archmarket/internal/usecase/interfaces"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidContactMessage = errors.New("invalid contact message")
	ErrNotificationFailed    = errors.New("notification failed")
)

// IContactUseCase persists contact-form inquiries and relays them to the
// configured site contact address.
type IContactUseCase interface {
	Submit(ctx context.Context, m entities.ContactMessage) (entities.ContactMessage, error)
}

type ContactUseCase struct {
	repo       interfaces.IContactMessageRepository
	siteConfig ISiteConfigUseCase
	notifier   interfaces.INotificationService
}

var _ IContactUseCase = (*ContactUseCase)(nil)

func NewContactUseCase(repo interfaces.IContactMessageRepository, siteConfig ISiteConfigUseCase, notifier interfaces.INotificationService) *ContactUseCase {
	return &ContactUseCase{repo: repo, siteConfig: siteConfig, notifier: notifier}
}

func (u *ContactUseCase) Submit(ctx context.Context, m entities.ContactMessage) (entities.ContactMessage, error) {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Comments = strings.TrimSpace(m.Comments)
	if m.Name == "" || m.Email == "" || m.Comments == "" {
		return entities.ContactMessage{}, ErrInvalidContactMessage
	}

	m.ID = uuid.NewString()
	m.Status = entities.ContactMessageStatusNew
	m.CreatedAt = time.Now().UTC()

	created, err := u.repo.Create(ctx, m)
	if err != nil {
		return entities.ContactMessage{}, err
	}

	cfg, err := u.siteConfig.Get(ctx)
	if err != nil {
		return entities.ContactMessage{}, err
	}
	if cfg.ContactEmail == "" || u.notifier == nil {
		// The inquiry is stored either way; without a configured address
		// or notifier there is nobody to relay it to.
		log.Printf("[contact][usecase] relay not configured, inquiry stored only id=%s", created.ID)
		return created, nil
	}

	n := entities.Notification{
		Recipient: cfg.ContactEmail,
		Subject:   fmt.Sprintf("New inquiry from %s", created.Name),
		HTMLBody: fmt.Sprintf(
			"<p><b>Name:</b> %s</p><p><b>Email:</b> %s</p><p><b>Phone:</b> %s</p><p><b>Location:</b> %s</p><p><b>Timeline:</b> %s</p><p>%s</p>",
			created.Name, created.Email, created.Phone, created.ProjectLocation, created.Timeline, created.Comments,
		),
	}
	if err := u.notifier.Send(ctx, n); err != nil {
		log.Printf("[contact][usecase] relay failed id=%s err=%v", created.ID, err)
		return entities.ContactMessage{}, fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}

	return created, nil
}
