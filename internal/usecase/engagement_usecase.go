package usecase

import (
	"archmarket/internal/domain/entities"
	"archmarket/internal/usecase/interfaces"
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidEntityKind = errors.New("invalid entity kind")
	ErrInvalidToggleKind = errors.New("invalid toggle kind")
	ErrInvalidVisitorID  = errors.New("invalid visitor id")
	ErrInvalidEntityID   = errors.New("invalid entity id")
)

// ToggleResult is the visitor's state plus the entity-wide counters after a
// toggle.
type ToggleResult struct {
	Liked         bool `json:"liked"`
	Favorited     bool `json:"favorited"`
	LikeCount     int  `json:"like_count"`
	FavoriteCount int  `json:"favorite_count"`
}

// IEngagementUseCase exposes durable like/favorite toggles.
type IEngagementUseCase interface {
	Toggle(ctx context.Context, kind entities.EntityKind, entityID, visitorID string, toggle entities.ToggleKind) (ToggleResult, error)
	Counts(ctx context.Context, kind entities.EntityKind, entityID string) (entities.EngagementCounts, error)
}

type EngagementUseCase struct {
	repo interfaces.IEngagementRepository
}

var _ IEngagementUseCase = (*EngagementUseCase)(nil)

func NewEngagementUseCase(repo interfaces.IEngagementRepository) *EngagementUseCase {
	return &EngagementUseCase{repo: repo}
}

func (u *EngagementUseCase) Toggle(ctx context.Context, kind entities.EntityKind, entityID, visitorID string, toggle entities.ToggleKind) (ToggleResult, error) {
	if !kind.Valid() {
		return ToggleResult{}, ErrInvalidEntityKind
	}
	if !toggle.Valid() {
		return ToggleResult{}, ErrInvalidToggleKind
	}
	entityID = strings.TrimSpace(entityID)
	if entityID == "" {
		return ToggleResult{}, ErrInvalidEntityID
	}
	visitorID = strings.TrimSpace(visitorID)
	if visitorID == "" {
		return ToggleResult{}, ErrInvalidVisitorID
	}

	e, err := u.repo.Get(ctx, kind, entityID, visitorID)
	if err != nil {
		return ToggleResult{}, err
	}
	if e.VisitorID == "" {
		e = entities.Engagement{EntityKind: kind, EntityID: entityID, VisitorID: visitorID}
	}

	switch toggle {
	case entities.ToggleKindLike:
		e.Liked = !e.Liked
	case entities.ToggleKindFavorite:
		e.Favorited = !e.Favorited
	}
	e.UpdatedAt = time.Now().UTC()

	if _, err := u.repo.Put(ctx, e); err != nil {
		return ToggleResult{}, err
	}

	counts, err := u.repo.Counts(ctx, kind, entityID)
	if err != nil {
		return ToggleResult{}, err
	}

	return ToggleResult{
		Liked:         e.Liked,
		Favorited:     e.Favorited,
		LikeCount:     counts.Likes,
		FavoriteCount: counts.Favorites,
	}, nil
}

func (u *EngagementUseCase) Counts(ctx context.Context, kind entities.EntityKind, entityID string) (entities.EngagementCounts, error) {
	if !kind.Valid() {
		return entities.EngagementCounts{}, ErrInvalidEntityKind
	}
	entityID = strings.TrimSpace(entityID)
	if entityID == "" {
		return entities.EngagementCounts{}, ErrInvalidEntityID
	}
	return u.repo.Counts(ctx, kind, entityID)
}
