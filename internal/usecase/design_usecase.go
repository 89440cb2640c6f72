package usecase

import (
	"archmarket/internal/domain/entities"
	"archmarket/internal/usecase/interfaces"
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingDesignData = errors.New("missing design data")
)

// IDesignUseCase exposes the design calculator operations.
//
// CreateEntry runs the area allocation and persists the quote only when the
// allocation succeeds; a failed calculation leaves no trace.
type IDesignUseCase interface {
	CreateEntry(ctx context.Context, areaTotal float64, options []entities.DesignOption, email string) (entities.DesignEntry, error)
	ListEntries(ctx context.Context) ([]entities.DesignEntry, error)
}

type DesignUseCase struct {
	repo interfaces.IDesignEntryRepository
}

var _ IDesignUseCase = (*DesignUseCase)(nil)

func NewDesignUseCase(repo interfaces.IDesignEntryRepository) *DesignUseCase {
	return &DesignUseCase{repo: repo}
}

func (u *DesignUseCase) CreateEntry(ctx context.Context, areaTotal float64, options []entities.DesignOption, email string) (entities.DesignEntry, error) {
	if areaTotal <= 0 || len(options) == 0 {
		return entities.DesignEntry{}, ErrMissingDesignData
	}

	alloc, err := entities.AllocateDesign(areaTotal, options)
	if err != nil {
		log.Printf("[design][usecase] allocation rejected area_total=%.2f options=%d err=%v", areaTotal, len(options), err)
		return entities.DesignEntry{}, err
	}

	e := entities.DesignEntry{
		ID:            uuid.NewString(),
		AreaTotal:     alloc.AreaTotal,
		AreaBasic:     alloc.AreaBasic,
		AreaAvailable: alloc.AreaAvailable,
		AreaUsed:      alloc.AreaUsed,
		OccupancyPct:  alloc.OccupancyPct,
		Options:       options,
		TotalPrice:    alloc.TotalPrice,
		Email:         strings.TrimSpace(email),
		CreatedAt:     time.Now().UTC(),
	}
	return u.repo.Create(ctx, e)
}

func (u *DesignUseCase) ListEntries(ctx context.Context) ([]entities.DesignEntry, error) {
	return u.repo.List(ctx)
}
