package usecase

import (
	"context"
	"errors"
	"testing"

	"archmarket/internal/domain/entities"
	mock_interfaces "archmarket/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestEngagementUseCase_Toggle(t *testing.T) {
	t.Run("invalid kind", func(t *testing.T) {
		uc := NewEngagementUseCase(nil)
		_, err := uc.Toggle(context.Background(), "page", "e-1", "v-1", entities.ToggleKindLike)
		if !errors.Is(err, ErrInvalidEntityKind) {
			t.Fatalf("expected ErrInvalidEntityKind, got %v", err)
		}
	})

	t.Run("invalid toggle", func(t *testing.T) {
		uc := NewEngagementUseCase(nil)
		_, err := uc.Toggle(context.Background(), entities.EntityKindBlog, "e-1", "v-1", "star")
		if !errors.Is(err, ErrInvalidToggleKind) {
			t.Fatalf("expected ErrInvalidToggleKind, got %v", err)
		}
	})

	t.Run("invalid visitor", func(t *testing.T) {
		uc := NewEngagementUseCase(nil)
		_, err := uc.Toggle(context.Background(), entities.EntityKindBlog, "e-1", "  ", entities.ToggleKindLike)
		if !errors.Is(err, ErrInvalidVisitorID) {
			t.Fatalf("expected ErrInvalidVisitorID, got %v", err)
		}
	})

	t.Run("first like initializes the row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewEngagementUseCase(repo)

		repo.EXPECT().Get(gomock.Any(), entities.EntityKindBlog, "e-1", "v-1").Return(entities.Engagement{}, nil)
		repo.EXPECT().Put(gomock.Any(), gomock.AssignableToTypeOf(entities.Engagement{})).DoAndReturn(
			func(_ context.Context, e entities.Engagement) (entities.Engagement, error) {
				if !e.Liked || e.Favorited {
					t.Fatalf("unexpected state: %+v", e)
				}
				if e.VisitorID != "v-1" || e.UpdatedAt.IsZero() {
					t.Fatalf("unexpected engagement: %+v", e)
				}
				return e, nil
			},
		)
		repo.EXPECT().Counts(gomock.Any(), entities.EntityKindBlog, "e-1").Return(entities.EngagementCounts{Likes: 5, Favorites: 2}, nil)

		res, err := uc.Toggle(context.Background(), entities.EntityKindBlog, "e-1", "v-1", entities.ToggleKindLike)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Liked || res.Favorited || res.LikeCount != 5 || res.FavoriteCount != 2 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("second like flips back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewEngagementUseCase(repo)

		existing := entities.Engagement{EntityKind: entities.EntityKindProduct, EntityID: "p-1", VisitorID: "v-1", Liked: true, Favorited: true}
		repo.EXPECT().Get(gomock.Any(), entities.EntityKindProduct, "p-1", "v-1").Return(existing, nil)
		repo.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Engagement) (entities.Engagement, error) {
				if e.Liked {
					t.Fatalf("expected like to flip off")
				}
				if !e.Favorited {
					t.Fatalf("expected favorite untouched")
				}
				return e, nil
			},
		)
		repo.EXPECT().Counts(gomock.Any(), entities.EntityKindProduct, "p-1").Return(entities.EngagementCounts{}, nil)

		res, err := uc.Toggle(context.Background(), entities.EntityKindProduct, "p-1", "v-1", entities.ToggleKindLike)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Liked || !res.Favorited {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestEngagementUseCase_Counts(t *testing.T) {
	t.Run("invalid kind", func(t *testing.T) {
		uc := NewEngagementUseCase(nil)
		_, err := uc.Counts(context.Background(), "page", "e-1")
		if !errors.Is(err, ErrInvalidEntityKind) {
			t.Fatalf("expected ErrInvalidEntityKind, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEngagementRepository(ctrl)
		uc := NewEngagementUseCase(repo)
		repo.EXPECT().Counts(gomock.Any(), entities.EntityKindProject, "pr-1").Return(entities.EngagementCounts{Likes: 3}, nil)

		counts, err := uc.Counts(context.Background(), entities.EntityKindProject, " pr-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if counts.Likes != 3 {
			t.Fatalf("unexpected counts: %+v", counts)
		}
	})
}
