package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlanType selects the deliverable format of an architectural plan.
type PlanType string

const (
	PlanTypePDF      PlanType = "pdf"
	PlanTypeEditable PlanType = "editable"
)

// AreaUnit is the measurement system a plan is drawn in.
type AreaUnit string

const (
	AreaUnitM2   AreaUnit = "m2"
	AreaUnitSqft AreaUnit = "sqft"
)

// Product is a marketplace architectural plan persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - Price is the base price; the four Price* variants cover the
//     plan-type x area-unit matrix and may be zero when unset.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Style       string `json:"style"`

	Price             decimal.Decimal `json:"price"`
	PricePDFM2        decimal.Decimal `json:"price_pdf_m2"`
	PricePDFSqft      decimal.Decimal `json:"price_pdf_sqft"`
	PriceEditableM2   decimal.Decimal `json:"price_editable_m2"`
	PriceEditableSqft decimal.Decimal `json:"price_editable_sqft"`

	Area     float64  `json:"area"`
	AreaUnit AreaUnit `json:"area_unit"`

	ZipFileKey string `json:"zip_file_key"`
	IsActive   bool   `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlanPrice resolves the price for a plan-type/area-unit combination,
// falling back to the base price when the variant is unset.
func (p Product) PlanPrice(plan PlanType, unit AreaUnit) decimal.Decimal {
	var v decimal.Decimal
	switch {
	case plan == PlanTypePDF && unit == AreaUnitM2:
		v = p.PricePDFM2
	case plan == PlanTypePDF && unit == AreaUnitSqft:
		v = p.PricePDFSqft
	case plan == PlanTypeEditable && unit == AreaUnitM2:
		v = p.PriceEditableM2
	case plan == PlanTypeEditable && unit == AreaUnitSqft:
		v = p.PriceEditableSqft
	}
	if v.IsZero() {
		return p.Price
	}
	return v
}

// HasDownload reports whether purchasing this product yields a zip delivery.
func (p Product) HasDownload() bool {
	return p.ZipFileKey != ""
}
