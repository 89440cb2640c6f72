package request

import (
	"strings"

	"archmarket/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// AddCartItemRequest adds or replaces a product line in the active cart.
//
// PlanType/AreaUnit select the catalog price variant; Price overrides it for
// design-calculator quotes carried into the cart.
type AddCartItemRequest struct {
	ProductID string   `json:"product_id" binding:"required"`
	Quantity  int      `json:"quantity" binding:"required"`
	PlanType  string   `json:"plan_type"`
	AreaUnit  string   `json:"area_unit"`
	Price     *float64 `json:"price"`
}

func (r AddCartItemRequest) ResolveProductID() string {
	return strings.TrimSpace(r.ProductID)
}

func (r AddCartItemRequest) ResolvePlanType() entities.PlanType {
	if r.PlanType == "" {
		return entities.PlanTypePDF
	}
	return entities.PlanType(r.PlanType)
}

func (r AddCartItemRequest) ResolveAreaUnit() entities.AreaUnit {
	if r.AreaUnit == "" {
		return entities.AreaUnitM2
	}
	return entities.AreaUnit(r.AreaUnit)
}

func (r AddCartItemRequest) ResolvePrice() *decimal.Decimal {
	if r.Price == nil {
		return nil
	}
	d := decimal.NewFromFloat(*r.Price)
	return &d
}

// UpdateCartItemRequest changes a line's quantity; zero or negative removes
// the line.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func (r UpdateCartItemRequest) ResolveQuantity() int {
	if r.Quantity == nil {
		return 0
	}
	return *r.Quantity
}
