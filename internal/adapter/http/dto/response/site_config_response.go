package response

import "archmarket/internal/domain/entities"

type SiteConfigResponse struct {
	SchemaVersion   int               `json:"schema_version"`
	SiteName        string            `json:"site_name"`
	ContactEmail    string            `json:"contact_email"`
	Currency        string            `json:"currency"`
	MaintenanceMode bool              `json:"maintenance_mode"`
	Extra           map[string]string `json:"extra,omitempty"`
}

func FromSiteConfig(cfg entities.SiteConfig) SiteConfigResponse {
	return SiteConfigResponse{
		SchemaVersion:   cfg.SchemaVersion,
		SiteName:        cfg.SiteName,
		ContactEmail:    cfg.ContactEmail,
		Currency:        cfg.Currency,
		MaintenanceMode: cfg.MaintenanceMode,
		Extra:           cfg.Extra,
	}
}
