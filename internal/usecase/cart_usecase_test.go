package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"archmarket/internal/domain/entities"
	"archmarket/internal/usecase/interfaces"
	mock_interfaces "archmarket/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

// memCartRepo is a stateful in-memory cart store for concurrency tests.
// inFlight tracks an open deactivate-then-activate sequence; a second
// DeactivateAllForUser arriving while one is open means two activations
// interleaved and the single-active invariant is at risk.
type memCartRepo struct {
	mu          sync.Mutex
	carts       map[string]entities.Cart
	inFlight    bool
	interleaved bool
}

var _ interfaces.ICartRepository = (*memCartRepo)(nil)

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{carts: map[string]entities.Cart{}}
}

func (r *memCartRepo) Create(_ context.Context, c entities.Cart) (entities.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[c.ID] = c
	r.inFlight = false
	return c, nil
}

func (r *memCartRepo) GetByID(_ context.Context, id string) (entities.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.carts[id], nil
}

func (r *memCartRepo) GetActiveByUser(_ context.Context, userID string) (entities.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.carts {
		if c.UserID == userID && c.IsActive {
			return c, nil
		}
	}
	return entities.Cart{}, nil
}

func (r *memCartRepo) GetLatestByUser(_ context.Context, userID string) (entities.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest entities.Cart
	for _, c := range r.carts {
		if c.UserID == userID && (latest.ID == "" || c.CreatedAt.After(latest.CreatedAt)) {
			latest = c
		}
	}
	return latest, nil
}

func (r *memCartRepo) SetActive(_ context.Context, cartID string, active bool) (entities.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.carts[cartID]
	c.IsActive = active
	r.carts[cartID] = c
	r.inFlight = false
	return c, nil
}

func (r *memCartRepo) DeactivateAllForUser(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.inFlight {
		r.interleaved = true
	}
	r.inFlight = true
	for id, c := range r.carts {
		if c.UserID == userID {
			c.IsActive = false
			r.carts[id] = c
		}
	}
	return nil
}

func (r *memCartRepo) PutItem(_ context.Context, cartID string, item entities.CartItem) (entities.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.carts[cartID]
	replaced := false
	for i, it := range c.Items {
		if it.ID == item.ID {
			c.Items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		c.Items = append(c.Items, item)
	}
	r.carts[cartID] = c
	return c, nil
}

func (r *memCartRepo) DeleteItem(_ context.Context, cartID string, itemID string) (entities.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.carts[cartID]
	for i, it := range c.Items {
		if it.ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			break
		}
	}
	r.carts[cartID] = c
	return c, nil
}

func TestCartUseCase_ActiveCart(t *testing.T) {
	t.Run("invalid user", func(t *testing.T) {
		uc := NewCartUseCase(nil, nil)
		_, err := uc.ActiveCart(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("reactivates the latest cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		uc := NewCartUseCase(carts, nil)

		latest := entities.Cart{ID: "cart-1", UserID: "u-1"}
		carts.EXPECT().DeactivateAllForUser(gomock.Any(), "u-1").Return(nil)
		carts.EXPECT().GetLatestByUser(gomock.Any(), "u-1").Return(latest, nil)
		carts.EXPECT().SetActive(gomock.Any(), "cart-1", true).Return(entities.Cart{ID: "cart-1", UserID: "u-1", IsActive: true}, nil)

		cart, err := uc.ActiveCart(context.Background(), "u-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cart.IsActive || cart.ID != "cart-1" {
			t.Fatalf("unexpected cart: %+v", cart)
		}
	})

	t.Run("creates a cart when none exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		uc := NewCartUseCase(carts, nil)

		carts.EXPECT().DeactivateAllForUser(gomock.Any(), "u-1").Return(nil)
		carts.EXPECT().GetLatestByUser(gomock.Any(), "u-1").Return(entities.Cart{}, nil)
		carts.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Cart{})).DoAndReturn(
			func(_ context.Context, c entities.Cart) (entities.Cart, error) {
				if c.ID == "" || c.UserID != "u-1" || !c.IsActive {
					t.Fatalf("unexpected cart: %+v", c)
				}
				return c, nil
			},
		)

		cart, err := uc.ActiveCart(context.Background(), "u-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cart.UserID != "u-1" {
			t.Fatalf("unexpected cart: %+v", cart)
		}
	})
}

func TestCartUseCase_SingleActiveCartUnderConcurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	products := mock_interfaces.NewMockIProductRepository(ctrl)
	products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{
		ID:       "p-1",
		Price:    decimal.NewFromInt(100),
		IsActive: true,
	}, nil).AnyTimes()

	repo := newMemCartRepo()
	uc := NewCartUseCase(repo, products)

	const workers = 32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var err error
			if i%2 == 0 {
				_, err = uc.ActiveCart(context.Background(), "u-1")
			} else {
				_, err = uc.AddItem(context.Background(), "u-1", "p-1", 1, entities.PlanTypePDF, entities.AreaUnitM2, nil)
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.interleaved {
		t.Fatalf("activation sequences interleaved")
	}
	if len(repo.carts) != 1 {
		t.Fatalf("expected a single cart, got %d", len(repo.carts))
	}
	active := 0
	for _, c := range repo.carts {
		if c.IsActive {
			active++
		}
	}
	if active != 1 {
		t.Fatalf("expected exactly one active cart, got %d", active)
	}
}

func TestCartUseCase_AddItem(t *testing.T) {
	product := entities.Product{
		ID:         "p-1",
		Name:       "Casa Moderna",
		Price:      decimal.NewFromInt(100),
		PricePDFM2: decimal.NewFromInt(80),
		IsActive:   true,
	}

	t.Run("invalid quantity", func(t *testing.T) {
		uc := NewCartUseCase(nil, nil)
		_, err := uc.AddItem(context.Background(), "u-1", "p-1", 0, entities.PlanTypePDF, entities.AreaUnitM2, nil)
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("negative custom price", func(t *testing.T) {
		uc := NewCartUseCase(nil, nil)
		bad := decimal.NewFromInt(-1)
		_, err := uc.AddItem(context.Background(), "u-1", "p-1", 1, entities.PlanTypePDF, entities.AreaUnitM2, &bad)
		if !errors.Is(err, ErrInvalidPrice) {
			t.Fatalf("expected ErrInvalidPrice, got %v", err)
		}
	})

	t.Run("product not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCartUseCase(nil, products)

		products.EXPECT().GetByID(gomock.Any(), "p-9").Return(entities.Product{}, nil)

		_, err := uc.AddItem(context.Background(), "u-1", "p-9", 1, entities.PlanTypePDF, entities.AreaUnitM2, nil)
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("adds a new line at the plan price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCartUseCase(carts, products)

		active := entities.Cart{ID: "cart-1", UserID: "u-1", IsActive: true}
		products.EXPECT().GetByID(gomock.Any(), "p-1").Return(product, nil)
		carts.EXPECT().DeactivateAllForUser(gomock.Any(), "u-1").Return(nil)
		carts.EXPECT().GetLatestByUser(gomock.Any(), "u-1").Return(active, nil)
		carts.EXPECT().SetActive(gomock.Any(), "cart-1", true).Return(active, nil)
		carts.EXPECT().PutItem(gomock.Any(), "cart-1", gomock.AssignableToTypeOf(entities.CartItem{})).DoAndReturn(
			func(_ context.Context, _ string, item entities.CartItem) (entities.Cart, error) {
				if item.ID == "" || item.ProductID != "p-1" || item.Quantity != 2 {
					t.Fatalf("unexpected item: %+v", item)
				}
				if !item.Price.Equal(decimal.NewFromInt(80)) {
					t.Fatalf("expected plan price 80, got %s", item.Price.String())
				}
				active.Items = []entities.CartItem{item}
				return active, nil
			},
		)

		cart, err := uc.AddItem(context.Background(), "u-1", "p-1", 2, entities.PlanTypePDF, entities.AreaUnitM2, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cart.Items) != 1 {
			t.Fatalf("unexpected cart: %+v", cart)
		}
	})

	t.Run("custom price overrides the catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCartUseCase(carts, products)

		active := entities.Cart{ID: "cart-1", UserID: "u-1", IsActive: true}
		custom := decimal.NewFromFloat(42.50)
		products.EXPECT().GetByID(gomock.Any(), "p-1").Return(product, nil)
		carts.EXPECT().DeactivateAllForUser(gomock.Any(), "u-1").Return(nil)
		carts.EXPECT().GetLatestByUser(gomock.Any(), "u-1").Return(active, nil)
		carts.EXPECT().SetActive(gomock.Any(), "cart-1", true).Return(active, nil)
		carts.EXPECT().PutItem(gomock.Any(), "cart-1", gomock.AssignableToTypeOf(entities.CartItem{})).DoAndReturn(
			func(_ context.Context, _ string, item entities.CartItem) (entities.Cart, error) {
				if !item.Price.Equal(custom) {
					t.Fatalf("expected custom price, got %s", item.Price.String())
				}
				return active, nil
			},
		)

		if _, err := uc.AddItem(context.Background(), "u-1", "p-1", 1, entities.PlanTypePDF, entities.AreaUnitM2, &custom); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("re-adding replaces the line keeping its id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCartUseCase(carts, products)

		addedAt := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
		active := entities.Cart{ID: "cart-1", UserID: "u-1", IsActive: true, Items: []entities.CartItem{
			{ID: "item-1", ProductID: "p-1", Quantity: 1, Price: decimal.NewFromInt(80), AddedAt: addedAt},
		}}
		products.EXPECT().GetByID(gomock.Any(), "p-1").Return(product, nil)
		carts.EXPECT().DeactivateAllForUser(gomock.Any(), "u-1").Return(nil)
		carts.EXPECT().GetLatestByUser(gomock.Any(), "u-1").Return(active, nil)
		carts.EXPECT().SetActive(gomock.Any(), "cart-1", true).Return(active, nil)
		carts.EXPECT().PutItem(gomock.Any(), "cart-1", gomock.AssignableToTypeOf(entities.CartItem{})).DoAndReturn(
			func(_ context.Context, _ string, item entities.CartItem) (entities.Cart, error) {
				if item.ID != "item-1" {
					t.Fatalf("expected item id to be kept, got %q", item.ID)
				}
				if !item.AddedAt.Equal(addedAt) {
					t.Fatalf("expected added_at to be kept, got %v", item.AddedAt)
				}
				if item.Quantity != 5 {
					t.Fatalf("expected quantity replaced, got %d", item.Quantity)
				}
				return active, nil
			},
		)

		if _, err := uc.AddItem(context.Background(), "u-1", "p-1", 5, entities.PlanTypePDF, entities.AreaUnitM2, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCartUseCase_UpdateItemQuantity(t *testing.T) {
	active := entities.Cart{ID: "cart-1", UserID: "u-1", IsActive: true, Items: []entities.CartItem{
		{ID: "item-1", ProductID: "p-1", Quantity: 1, Price: decimal.NewFromInt(80)},
	}}

	expectActive := func(carts *mock_interfaces.MockICartRepository) {
		carts.EXPECT().DeactivateAllForUser(gomock.Any(), "u-1").Return(nil)
		carts.EXPECT().GetLatestByUser(gomock.Any(), "u-1").Return(active, nil)
		carts.EXPECT().SetActive(gomock.Any(), "cart-1", true).Return(active, nil)
	}

	t.Run("missing item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		uc := NewCartUseCase(carts, nil)
		expectActive(carts)

		_, err := uc.UpdateItemQuantity(context.Background(), "u-1", "item-9", 2)
		if !errors.Is(err, ErrCartItemNotFound) {
			t.Fatalf("expected ErrCartItemNotFound, got %v", err)
		}
	})

	t.Run("zero quantity removes the line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		uc := NewCartUseCase(carts, nil)
		expectActive(carts)
		carts.EXPECT().DeleteItem(gomock.Any(), "cart-1", "item-1").Return(entities.Cart{ID: "cart-1"}, nil)

		cart, err := uc.UpdateItemQuantity(context.Background(), "u-1", "item-1", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cart.Items) != 0 {
			t.Fatalf("expected empty cart, got %+v", cart)
		}
	})

	t.Run("positive quantity rewrites the line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		uc := NewCartUseCase(carts, nil)
		expectActive(carts)
		carts.EXPECT().PutItem(gomock.Any(), "cart-1", gomock.AssignableToTypeOf(entities.CartItem{})).DoAndReturn(
			func(_ context.Context, _ string, item entities.CartItem) (entities.Cart, error) {
				if item.ID != "item-1" || item.Quantity != 4 {
					t.Fatalf("unexpected item: %+v", item)
				}
				return active, nil
			},
		)

		if _, err := uc.UpdateItemQuantity(context.Background(), "u-1", "item-1", 4); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCartUseCase_RemoveItem(t *testing.T) {
	active := entities.Cart{ID: "cart-1", UserID: "u-1", IsActive: true, Items: []entities.CartItem{
		{ID: "item-1", ProductID: "p-1", Quantity: 1, Price: decimal.NewFromInt(80)},
	}}

	t.Run("missing item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		uc := NewCartUseCase(carts, nil)
		carts.EXPECT().DeactivateAllForUser(gomock.Any(), "u-1").Return(nil)
		carts.EXPECT().GetLatestByUser(gomock.Any(), "u-1").Return(active, nil)
		carts.EXPECT().SetActive(gomock.Any(), "cart-1", true).Return(active, nil)

		_, err := uc.RemoveItem(context.Background(), "u-1", "item-9")
		if !errors.Is(err, ErrCartItemNotFound) {
			t.Fatalf("expected ErrCartItemNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		uc := NewCartUseCase(carts, nil)
		carts.EXPECT().DeactivateAllForUser(gomock.Any(), "u-1").Return(nil)
		carts.EXPECT().GetLatestByUser(gomock.Any(), "u-1").Return(active, nil)
		carts.EXPECT().SetActive(gomock.Any(), "cart-1", true).Return(active, nil)
		carts.EXPECT().DeleteItem(gomock.Any(), "cart-1", "item-1").Return(entities.Cart{ID: "cart-1"}, nil)

		cart, err := uc.RemoveItem(context.Background(), "u-1", "item-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cart.ID != "cart-1" {
			t.Fatalf("unexpected cart: %+v", cart)
		}
	})
}
