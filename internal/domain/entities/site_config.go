package entities

import "strconv"

// SiteConfig is the typed site-wide configuration.
//
// Storage model (DynamoDB):
//   - one row per key (PK: key), assembled/split by FromPairs/Pairs.
//
// SchemaVersion lets future revisions migrate the key set; Extra carries
// admin-defined keys that have no typed field yet.
type SiteConfig struct {
	SchemaVersion   int               `json:"schema_version"`
	SiteName        string            `json:"site_name"`
	ContactEmail    string            `json:"contact_email"`
	Currency        string            `json:"currency"`
	MaintenanceMode bool              `json:"maintenance_mode"`
	Extra           map[string]string `json:"extra,omitempty"`
}

const SiteConfigSchemaVersion = 1

const (
	cfgKeySchemaVersion   = "schema_version"
	cfgKeySiteName        = "site_name"
	cfgKeyContactEmail    = "contact_email"
	cfgKeyCurrency        = "currency"
	cfgKeyMaintenanceMode = "maintenance_mode"
)

// SiteConfigFromPairs assembles the typed config from key/value rows.
// Unknown keys land in Extra.
func SiteConfigFromPairs(pairs map[string]string) SiteConfig {
	cfg := SiteConfig{SchemaVersion: SiteConfigSchemaVersion, Currency: "usd"}
	for k, v := range pairs {
		switch k {
		case cfgKeySchemaVersion:
			if n, err := strconv.Atoi(v); err == nil {
				cfg.SchemaVersion = n
			}
		case cfgKeySiteName:
			cfg.SiteName = v
		case cfgKeyContactEmail:
			cfg.ContactEmail = v
		case cfgKeyCurrency:
			cfg.Currency = v
		case cfgKeyMaintenanceMode:
			cfg.MaintenanceMode = v == "true" || v == "1"
		default:
			if cfg.Extra == nil {
				cfg.Extra = map[string]string{}
			}
			cfg.Extra[k] = v
		}
	}
	return cfg
}

// Pairs splits the typed config back into key/value rows.
func (c SiteConfig) Pairs() map[string]string {
	pairs := map[string]string{
		cfgKeySchemaVersion:   strconv.Itoa(c.SchemaVersion),
		cfgKeySiteName:        c.SiteName,
		cfgKeyContactEmail:    c.ContactEmail,
		cfgKeyCurrency:        c.Currency,
		cfgKeyMaintenanceMode: strconv.FormatBool(c.MaintenanceMode),
	}
	for k, v := range c.Extra {
		pairs[k] = v
	}
	return pairs
}
