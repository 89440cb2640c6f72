package request

import "archmarket/internal/domain/entities"

// SiteConfigRequest replaces the typed site configuration.
type SiteConfigRequest struct {
	SchemaVersion   int               `json:"schema_version"`
	SiteName        string            `json:"site_name"`
	ContactEmail    string            `json:"contact_email"`
	Currency        string            `json:"currency"`
	MaintenanceMode bool              `json:"maintenance_mode"`
	Extra           map[string]string `json:"extra"`
}

func (r SiteConfigRequest) ToEntity() entities.SiteConfig {
	return entities.SiteConfig{
		SchemaVersion:   r.SchemaVersion,
		SiteName:        r.SiteName,
		ContactEmail:    r.ContactEmail,
		Currency:        r.Currency,
		MaintenanceMode: r.MaintenanceMode,
		Extra:           r.Extra,
	}
}
