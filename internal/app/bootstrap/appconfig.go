// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - Request body size limits
//
// AppConfig carries what is specific to the catalog: where the resource
// list comes from, how browser views are tracked, and how long fetches may
// take.
type AppConfig struct {
	// Resource data source
	DataURL  string // Remote JSON endpoint; blank reads the local asset in-process
	DataFile string // On-disk asset overriding the embedded data.json (blank = embedded)

	// Session management configuration
	SessionKey  string // Secret key for signing session cookies and view tokens
	SessionName string // Cookie name for sessions (default: devcatalog-session)

	// Presentation
	SiteName string // Shown in the page header and title

	// Catalog views
	ViewIdleTTL       time.Duration // Views untouched this long are dropped
	ViewSweepInterval time.Duration // How often idle views are swept
	PageLoadLimit     int           // Page loads per client per minute (0 disables)

	// Fetching
	FetchTimeout time.Duration // Upper bound on one category fetch
}
