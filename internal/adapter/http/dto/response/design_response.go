package response

import (
	"time"

	"archmarket/internal/domain/entities"
)

// DesignEntryResponse keeps the calculator's public field names.
type DesignEntryResponse struct {
	ID            string                  `json:"id"`
	AreaTotal     float64                 `json:"area_total"`
	AreaBasic     float64                 `json:"area_basica"`
	AreaAvailable float64                 `json:"area_disponible"`
	AreaUsed      float64                 `json:"area_usada"`
	OccupancyPct  float64                 `json:"porcentaje_ocupado"`
	Options       []entities.DesignOption `json:"opciones"`
	TotalPrice    float64                 `json:"precio_total"`
	Email         string                  `json:"correo,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
}

func FromDesignEntry(e entities.DesignEntry) DesignEntryResponse {
	return DesignEntryResponse{
		ID:            e.ID,
		AreaTotal:     e.AreaTotal,
		AreaBasic:     e.AreaBasic,
		AreaAvailable: e.AreaAvailable,
		AreaUsed:      e.AreaUsed,
		OccupancyPct:  e.OccupancyPct,
		Options:       e.Options,
		TotalPrice:    e.TotalPrice,
		Email:         e.Email,
		CreatedAt:     e.CreatedAt,
	}
}

func FromDesignEntries(entries []entities.DesignEntry) []DesignEntryResponse {
	out := make([]DesignEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromDesignEntry(e))
	}
	return out
}
