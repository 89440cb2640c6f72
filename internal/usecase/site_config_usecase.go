package usecase

import (
	"archmarket/internal/domain/entities"
	"archmarket/internal/usecase/interfaces"
	"context"
	"errors"
)

var (
	ErrInvalidSiteConfig = errors.New("invalid site config")
)

// ISiteConfigUseCase exposes the typed site-wide configuration.
type ISiteConfigUseCase interface {
	Get(ctx context.Context) (entities.SiteConfig, error)
	Update(ctx context.Context, cfg entities.SiteConfig) (entities.SiteConfig, error)
}

type SiteConfigUseCase struct {
	repo interfaces.ISiteConfigRepository
}

var _ ISiteConfigUseCase = (*SiteConfigUseCase)(nil)

func NewSiteConfigUseCase(repo interfaces.ISiteConfigRepository) *SiteConfigUseCase {
	return &SiteConfigUseCase{repo: repo}
}

func (u *SiteConfigUseCase) Get(ctx context.Context) (entities.SiteConfig, error) {
	pairs, err := u.repo.GetAll(ctx)
	if err != nil {
		return entities.SiteConfig{}, err
	}
	return entities.SiteConfigFromPairs(pairs), nil
}

func (u *SiteConfigUseCase) Update(ctx context.Context, cfg entities.SiteConfig) (entities.SiteConfig, error) {
	if cfg.SchemaVersion == 0 {
		cfg.SchemaVersion = entities.SiteConfigSchemaVersion
	}
	if cfg.SchemaVersion != entities.SiteConfigSchemaVersion {
		return entities.SiteConfig{}, ErrInvalidSiteConfig
	}

	if err := u.repo.PutAll(ctx, cfg.Pairs()); err != nil {
		return entities.SiteConfig{}, err
	}
	return cfg, nil
}
