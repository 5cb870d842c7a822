package models

// Theme is the site-wide theme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// ParseTheme converts a string to Theme.
func ParseTheme(s string) Theme {
	switch s {
	case "light":
		return ThemeLight
	case "dark":
		return ThemeDark
	case "system":
		return ThemeSystem
	default:
		return ""
	}
}

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeSystem
}

// Items-per-page bounds enforced at the settings boundary.
const (
	MinItemsPerPage = 5
	MaxItemsPerPage = 50
)

// Settings is the singleton site configuration record. It is replaced
// wholesale on save, never patched field by field.
type Settings struct {
	SiteName               string `json:"siteName"`
	SiteDescription        string `json:"siteDescription"`
	ContactEmail           string `json:"contactEmail"`
	ItemsPerPage           int    `json:"itemsPerPage"`
	EnableNotifications    bool   `json:"enableNotifications"`
	EnableUserRegistration bool   `json:"enableUserRegistration"`
	MaintenanceMode        bool   `json:"maintenanceMode"`
	FooterText             string `json:"footerText"`
	AnalyticsID            string `json:"analyticsId"`
	Theme                  Theme  `json:"theme"`
}
