package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"archmarket/internal/domain/entities"
	mock_interfaces "archmarket/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// fakeSiteConfig serves a fixed config to the contact relay.
type fakeSiteConfig struct {
	cfg entities.SiteConfig
	err error
}

func (f *fakeSiteConfig) Get(context.Context) (entities.SiteConfig, error) { return f.cfg, f.err }

func (f *fakeSiteConfig) Update(_ context.Context, cfg entities.SiteConfig) (entities.SiteConfig, error) {
	return cfg, nil
}

func TestContactUseCase_Submit(t *testing.T) {
	valid := entities.ContactMessage{
		Name:     "Ana",
		Email:    "ana@example.com",
		Comments: "Quiero una casa moderna",
	}

	t.Run("missing fields", func(t *testing.T) {
		uc := NewContactUseCase(nil, nil, nil)
		_, err := uc.Submit(context.Background(), entities.ContactMessage{Name: "Ana"})
		if !errors.Is(err, ErrInvalidContactMessage) {
			t.Fatalf("expected ErrInvalidContactMessage, got %v", err)
		}
	})

	t.Run("stored and relayed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContactMessageRepository(ctrl)
		notifier := mock_interfaces.NewMockINotificationService(ctrl)
		uc := NewContactUseCase(repo, &fakeSiteConfig{cfg: entities.SiteConfig{ContactEmail: "team@archmarket.example"}}, notifier)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ContactMessage{})).DoAndReturn(
			func(_ context.Context, m entities.ContactMessage) (entities.ContactMessage, error) {
				if m.ID == "" || m.Status != entities.ContactMessageStatusNew || m.CreatedAt.IsZero() {
					t.Fatalf("unexpected message: %+v", m)
				}
				return m, nil
			},
		)
		notifier.EXPECT().Send(gomock.Any(), gomock.AssignableToTypeOf(entities.Notification{})).DoAndReturn(
			func(_ context.Context, n entities.Notification) error {
				if n.Recipient != "team@archmarket.example" {
					t.Fatalf("unexpected recipient: %q", n.Recipient)
				}
				if !strings.Contains(n.HTMLBody, "Quiero una casa moderna") {
					t.Fatalf("unexpected body: %s", n.HTMLBody)
				}
				return nil
			},
		)

		msg, err := uc.Submit(context.Background(), valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if msg.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("no configured address stores only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContactMessageRepository(ctrl)
		// No notifier expectation: there is nobody to relay to.
		uc := NewContactUseCase(repo, &fakeSiteConfig{}, mock_interfaces.NewMockINotificationService(ctrl))

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.ContactMessage) (entities.ContactMessage, error) { return m, nil },
		)

		if _, err := uc.Submit(context.Background(), valid); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unconfigured notifier stores only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContactMessageRepository(ctrl)
		// Nil notifier, as wired when SENDGRID_API_KEY is unset.
		uc := NewContactUseCase(repo, &fakeSiteConfig{cfg: entities.SiteConfig{ContactEmail: "team@archmarket.example"}}, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.ContactMessage) (entities.ContactMessage, error) { return m, nil },
		)

		if _, err := uc.Submit(context.Background(), valid); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("relay failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContactMessageRepository(ctrl)
		notifier := mock_interfaces.NewMockINotificationService(ctrl)
		uc := NewContactUseCase(repo, &fakeSiteConfig{cfg: entities.SiteConfig{ContactEmail: "team@archmarket.example"}}, notifier)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.ContactMessage) (entities.ContactMessage, error) { return m, nil },
		)
		notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("sendgrid down"))

		_, err := uc.Submit(context.Background(), valid)
		if !errors.Is(err, ErrNotificationFailed) {
			t.Fatalf("expected ErrNotificationFailed, got %v", err)
		}
	})
}
