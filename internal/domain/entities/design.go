package entities

import (
	"fmt"
	"time"
)

// DesignOption is a space the customer wants to fit into the design
// (bedroom, office, pool...). Area in m2, price in the site currency.
// JSON field names match the public calculator contract.
type DesignOption struct {
	Name  string  `json:"nombre,omitempty"`
	Area  float64 `json:"area"`
	Price float64 `json:"precio"`
}

// DesignAllocation is the result of the area calculation.
type DesignAllocation struct {
	AreaTotal     float64
	AreaBasic     float64
	AreaAvailable float64
	AreaUsed      float64
	OccupancyPct  float64
	TotalPrice    float64
}

// InsufficientAreaError means the selected options do not fit in the
// available area. Deficit is the missing m2.
type InsufficientAreaError struct {
	Deficit float64
}

func (e *InsufficientAreaError) Error() string {
	return fmt.Sprintf("Área insuficiente. Faltan %.2f m²", e.Deficit)
}

// AllocateDesign runs the design area calculation.
//
// Rules:
//   - Half the lot is reserved for basics (circulation, walls, services);
//     the other half is available for selected options.
//   - Options with missing area or price count as zero, never as invalid.
//   - Occupancy is used/available as a percentage; zero when nothing is
//     available.
func AllocateDesign(areaTotal float64, options []DesignOption) (DesignAllocation, error) {
	basic := areaTotal * 0.5
	available := areaTotal - basic

	used := 0.0
	price := 0.0
	for _, opt := range options {
		used += opt.Area
		price += opt.Price
	}

	if used > available {
		return DesignAllocation{}, &InsufficientAreaError{Deficit: used - available}
	}

	occupancy := 0.0
	if available > 0 {
		occupancy = used / available * 100
	}

	return DesignAllocation{
		AreaTotal:     areaTotal,
		AreaBasic:     basic,
		AreaAvailable: available,
		AreaUsed:      used,
		OccupancyPct:  occupancy,
		TotalPrice:    price,
	}, nil
}

// DesignEntry is a persisted design quote.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Entries are append-only: one row per successful calculation, never
// updated.
type DesignEntry struct {
	ID            string         `json:"id"`
	AreaTotal     float64        `json:"area_total"`
	AreaBasic     float64        `json:"area_basica"`
	AreaAvailable float64        `json:"area_disponible"`
	AreaUsed      float64        `json:"area_usada"`
	OccupancyPct  float64        `json:"porcentaje_ocupado"`
	Options       []DesignOption `json:"opciones"`
	TotalPrice    float64        `json:"precio_total"`
	Email         string         `json:"correo,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}
