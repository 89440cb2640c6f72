package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestProductPlanPrice(t *testing.T) {
	p := Product{
		Price:             decimal.NewFromInt(100),
		PricePDFM2:        decimal.NewFromInt(80),
		PriceEditableM2:   decimal.NewFromInt(150),
		PriceEditableSqft: decimal.NewFromInt(170),
	}

	cases := []struct {
		name string
		plan PlanType
		unit AreaUnit
		want string
	}{
		{name: "pdf m2 variant", plan: PlanTypePDF, unit: AreaUnitM2, want: "80"},
		{name: "editable m2 variant", plan: PlanTypeEditable, unit: AreaUnitM2, want: "150"},
		{name: "editable sqft variant", plan: PlanTypeEditable, unit: AreaUnitSqft, want: "170"},
		{name: "unset variant falls back to base", plan: PlanTypePDF, unit: AreaUnitSqft, want: "100"},
		{name: "unknown combination falls back to base", plan: PlanType("paper"), unit: AreaUnitM2, want: "100"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.PlanPrice(tc.plan, tc.unit).String(); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestProductHasDownload(t *testing.T) {
	if (Product{}).HasDownload() {
		t.Fatalf("expected no download without a zip key")
	}
	if !(Product{ZipFileKey: "plans/casa-1.zip"}).HasDownload() {
		t.Fatalf("expected download with a zip key")
	}
}
