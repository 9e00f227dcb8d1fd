// internal/app/bootstrap/routes.go
package bootstrap

import (
	"crypto/sha256"
	"net/http"

	assetsfeature "github.com/dalemusser/devcatalog/internal/app/features/assets"
	catalogfeature "github.com/dalemusser/devcatalog/internal/app/features/catalog"
	errorsfeature "github.com/dalemusser/devcatalog/internal/app/features/errors"
	healthfeature "github.com/dalemusser/devcatalog/internal/app/features/health"
	"github.com/dalemusser/devcatalog/internal/app/system/viewsession"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, the data source, the asset check,
// and the Startup hook have completed.
//
// devcatalog initializes the template engine, builds the session manager,
// and mounts the catalog, asset and health routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := viewsession.NewManager(appCfg.SessionKey, appCfg.SessionName, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)
	errorsHandler := errorsfeature.NewHandler()

	r := chi.NewRouter()
	r.NotFound(errorsHandler.NotFound)

	// CSRF check on unsafe methods; GETs only receive a token.
	r.Use(plaintextHTTP(secure))
	r.Use(csrfProtect(appCfg.SessionKey, secure))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Source, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Resource list, filtered by ?category=
	assetsHandler := assetsfeature.NewHandler(deps.Assets, logger)
	r.Mount("/assets", assetsfeature.Routes(assetsHandler))

	// Catalog pages and HTMX endpoints
	catalogHandler := catalogfeature.NewHandler(deps.Store, deps.Views, sessionMgr, errLog, logger)
	catalogHandler.PageLimiter = deps.PageLimiter
	r.Mount("/", catalogfeature.Routes(catalogHandler))

	return r, nil
}

// plaintextHTTP marks non-TLS requests so the CSRF check compares origins
// against http:// instead of https://. Production always runs behind TLS.
func plaintextHTTP(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !secure && r.TLS == nil {
				r = csrf.PlaintextHTTPRequest(r)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// csrfProtect derives the CSRF key from the session key.
func csrfProtect(sessionKey string, secure bool) func(http.Handler) http.Handler {
	key := sha256.Sum256([]byte("devcatalog-csrf:" + sessionKey))
	return csrf.Protect(key[:],
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			errorsfeature.RenderBadRequest(w, r, "La sesión expiró. Recarga la página.", "/")
		})),
	)
}
