package usecase

import (
	"context"
	"errors"
	"testing"

	"archmarket/internal/domain/entities"
	mock_interfaces "archmarket/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSiteConfigUseCase_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISiteConfigRepository(ctrl)
	uc := NewSiteConfigUseCase(repo)

	repo.EXPECT().GetAll(gomock.Any()).Return(map[string]string{
		"site_name":     "ArchMarket",
		"contact_email": "hola@archmarket.example",
		"hero_title":    "Diseños a tu medida",
	}, nil)

	cfg, err := uc.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SiteName != "ArchMarket" || cfg.ContactEmail != "hola@archmarket.example" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Extra["hero_title"] != "Diseños a tu medida" {
		t.Fatalf("expected unknown keys in Extra, got %+v", cfg.Extra)
	}
	if cfg.SchemaVersion != entities.SiteConfigSchemaVersion {
		t.Fatalf("unexpected schema version: %d", cfg.SchemaVersion)
	}
}

func TestSiteConfigUseCase_Update(t *testing.T) {
	t.Run("unknown schema version", func(t *testing.T) {
		uc := NewSiteConfigUseCase(nil)
		_, err := uc.Update(context.Background(), entities.SiteConfig{SchemaVersion: 99})
		if !errors.Is(err, ErrInvalidSiteConfig) {
			t.Fatalf("expected ErrInvalidSiteConfig, got %v", err)
		}
	})

	t.Run("zero version defaults to current", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISiteConfigRepository(ctrl)
		uc := NewSiteConfigUseCase(repo)

		repo.EXPECT().PutAll(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, pairs map[string]string) error {
				if pairs["schema_version"] != "1" || pairs["site_name"] != "ArchMarket" {
					t.Fatalf("unexpected pairs: %v", pairs)
				}
				return nil
			},
		)

		cfg, err := uc.Update(context.Background(), entities.SiteConfig{SiteName: "ArchMarket"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.SchemaVersion != entities.SiteConfigSchemaVersion {
			t.Fatalf("expected defaulted version, got %d", cfg.SchemaVersion)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISiteConfigRepository(ctrl)
		uc := NewSiteConfigUseCase(repo)
		repo.EXPECT().PutAll(gomock.Any(), gomock.Any()).Return(errors.New("db"))

		if _, err := uc.Update(context.Background(), entities.SiteConfig{SchemaVersion: 1}); err == nil {
			t.Fatalf("expected error")
		}
	})
}
