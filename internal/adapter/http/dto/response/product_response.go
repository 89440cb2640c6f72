package response

import (
	"time"

	"archmarket/internal/domain/entities"
)

// ProductResponse renders catalog products. Money travels as fixed-point
// strings so clients never see binary-float artifacts.
type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Style       string `json:"style"`

	Price             string `json:"price"`
	PricePDFM2        string `json:"price_pdf_m2"`
	PricePDFSqft      string `json:"price_pdf_sqft"`
	PriceEditableM2   string `json:"price_editable_m2"`
	PriceEditableSqft string `json:"price_editable_sqft"`

	Area        float64 `json:"area"`
	AreaUnit    string  `json:"area_unit"`
	HasDownload bool    `json:"has_download"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		Category:          p.Category,
		Style:             p.Style,
		Price:             p.Price.StringFixed(2),
		PricePDFM2:        p.PricePDFM2.StringFixed(2),
		PricePDFSqft:      p.PricePDFSqft.StringFixed(2),
		PriceEditableM2:   p.PriceEditableM2.StringFixed(2),
		PriceEditableSqft: p.PriceEditableSqft.StringFixed(2),
		Area:              p.Area,
		AreaUnit:          string(p.AreaUnit),
		HasDownload:       p.HasDownload(),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}
