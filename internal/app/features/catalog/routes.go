// internal/app/features/catalog/routes.go
package catalog

import (
	errorsfeature "github.com/dalemusser/devcatalog/internal/app/features/errors"
	"github.com/dalemusser/devcatalog/internal/app/system/limits"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes returns the catalog router, mounted at "/".
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// Full page loads are limited per client.
	r.Group(func(pr chi.Router) {
		if h.PageLimiter != nil {
			pr.Use(h.PageLimiter.Middleware(errorsfeature.RenderTooManyRequests))
		}
		pr.Get("/", h.ServeCatalog)
		pr.Get("/categoria/{categoria}", h.ServeCategory)
		pr.Get("/recurso/{name}", h.ServeResource)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RequestSize(limits.MaxFormSize))
		pr.Post("/select", h.HandleSelect)
		pr.Post("/resize", h.HandleResize)
		pr.Post("/alert/confirm", h.HandleConfirmAlert)
	})
	return r
}
