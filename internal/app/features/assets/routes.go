package assets

import "github.com/go-chi/chi/v5"

// Routes returns the asset router, mounted under /assets.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/data.json", h.ServeData)
	return r
}
