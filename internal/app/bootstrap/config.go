// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/devcatalog/internal/app/system/limits"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"
)

// minSessionKeyLen is the shortest session key accepted.
const minSessionKeyLen = 32

// appConfigKeys defines the configuration keys for devcatalog.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: data_url, session_name, etc.
//   - Environment variables: DEVCATALOG_DATA_URL, DEVCATALOG_SESSION_NAME, etc.
//   - Command-line flags: --data_url, --session_name, etc.
var appConfigKeys = []config.AppKey{
	// Resource data source
	{Name: "data_url", Default: "", Desc: "Remote resource JSON endpoint (blank serves the bundled asset in-process)"},
	{Name: "data_file", Default: "", Desc: "Path to a data.json overriding the embedded asset"},

	// Sessions
	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session and view token signing key (at least 32 characters)"},
	{Name: "session_name", Default: "devcatalog-session", Desc: "Session cookie name"},

	// Presentation
	{Name: "site_name", Default: "Recursos para desarrolladores", Desc: "Site name shown in the layout"},

	// Catalog views
	{Name: "view_idle_ttl", Default: "30m", Desc: "Drop catalog views idle for this long (e.g., 30m, 2h)"},
	{Name: "view_sweep_interval", Default: "5m", Desc: "How often idle catalog views are swept"},
	{Name: "page_load_limit", Default: limits.PageLoadsPerWindow, Desc: "Catalog page loads allowed per client per minute (0 disables)"},

	// Fetching
	{Name: "fetch_timeout", Default: "10s", Desc: "Timeout for one resource fetch"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, DEVCATALOG_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "DEVCATALOG", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		DataURL:  appValues.String("data_url"),
		DataFile: appValues.String("data_file"),

		SessionKey:  appValues.String("session_key"),
		SessionName: appValues.String("session_name"),

		SiteName: appValues.String("site_name"),

		ViewIdleTTL:       appValues.Duration("view_idle_ttl", 30*time.Minute),
		ViewSweepInterval: appValues.Duration("view_sweep_interval", 5*time.Minute),
		PageLoadLimit:     appValues.Int("page_load_limit"),

		FetchTimeout: appValues.Duration("fetch_timeout", 10*time.Second),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.DataURL != "" && !urlutil.IsValidAbsHTTPURL(appCfg.DataURL) {
		logger.Error("invalid data_url", zap.String("data_url", appCfg.DataURL))
		return fmt.Errorf("data_url must be an absolute http(s) URL, got %q", appCfg.DataURL)
	}

	if len(appCfg.SessionKey) < minSessionKeyLen {
		return fmt.Errorf("session_key must be at least %d characters", minSessionKeyLen)
	}
	if coreCfg != nil && coreCfg.Env == "prod" && appCfg.SessionKey == "dev-only-change-me-please-0123456789ABCDEF" {
		return fmt.Errorf("session_key must be changed from the development default in prod")
	}

	if appCfg.ViewIdleTTL <= 0 || appCfg.ViewSweepInterval <= 0 {
		return fmt.Errorf("view_idle_ttl and view_sweep_interval must be positive")
	}
	if appCfg.PageLoadLimit < 0 {
		return fmt.Errorf("page_load_limit must not be negative")
	}
	if appCfg.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be positive")
	}

	return nil
}
