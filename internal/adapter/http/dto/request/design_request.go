package request

import (
	"strings"

	"archmarket/internal/domain/entities"
)

// DesignOptionRequest mirrors the public calculator contract; field names
// are part of the wire format consumed by the storefront.
type DesignOptionRequest struct {
	Name  string   `json:"nombre"`
	Area  *float64 `json:"area"`
	Price *float64 `json:"precio"`
}

// DesignRequest is the calculator input. AreaTotal and Options use pointers
// so "missing" and "zero" stay distinguishable.
type DesignRequest struct {
	AreaTotal *float64              `json:"area_total"`
	Options   []DesignOptionRequest `json:"opciones"`
	Email     string                `json:"correo"`
}

// Complete reports whether the mandatory calculator fields are present.
func (r DesignRequest) Complete() bool {
	return r.AreaTotal != nil && len(r.Options) > 0
}

func (r DesignRequest) ResolveAreaTotal() float64 {
	if r.AreaTotal == nil {
		return 0
	}
	return *r.AreaTotal
}

// ResolveOptions converts the payload to domain options. Missing option
// fields count as zero, matching the calculator contract.
func (r DesignRequest) ResolveOptions() []entities.DesignOption {
	opts := make([]entities.DesignOption, 0, len(r.Options))
	for _, o := range r.Options {
		opt := entities.DesignOption{Name: strings.TrimSpace(o.Name)}
		if o.Area != nil {
			opt.Area = *o.Area
		}
		if o.Price != nil {
			opt.Price = *o.Price
		}
		opts = append(opts, opt)
	}
	return opts
}
