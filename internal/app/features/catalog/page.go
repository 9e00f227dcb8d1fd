// internal/app/features/catalog/page.go
package catalog

import (
	"net/http"

	"github.com/dalemusser/devcatalog/internal/app/system/catalogview"
	"github.com/dalemusser/devcatalog/internal/app/system/timeouts"
	"github.com/dalemusser/devcatalog/internal/app/system/viewdata"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const pageTitle = "Catálogo de recursos"

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – catalog, nothing selected                                           |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeCatalog(w http.ResponseWriter, r *http.Request) {
	id, ctrl := h.newView(r)
	h.renderPage(w, r, id, ctrl)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /categoria/{categoria} – catalog with the route's category preselected  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeCategory(w http.ResponseWriter, r *http.Request) {
	categoria := chi.URLParam(r, "categoria")
	id, ctrl := h.newView(r)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Fetch(), h.Log, "catalog route fetch")
	defer cancel()

	// A failed fetch has already raised the view's alert; the page still
	// renders so the banner shows.
	if err := ctrl.ApplyRoute(ctx, categoria); err != nil {
		h.Log.Warn("preselect category failed",
			zap.String("categoria", categoria),
			zap.String("view_id", id),
			zap.Error(err))
	}
	h.renderPage(w, r, id, ctrl)
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, id string, ctrl *catalogview.Controller) {
	data, ok := h.pageData(w, r, id, ctrl)
	if !ok {
		return
	}
	h.Render(w, r, "catalog_page", data)
}

func (h *Handler) renderPanel(w http.ResponseWriter, r *http.Request, id string, ctrl *catalogview.Controller) {
	data, ok := h.pageData(w, r, id, ctrl)
	if !ok {
		return
	}
	h.Snippet(w, "catalog_panel", data)
}

func (h *Handler) pageData(w http.ResponseWriter, r *http.Request, id string, ctrl *catalogview.Controller) (catalogPageData, bool) {
	token, err := h.Sessions.Token(id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "sign view token failed", err, "", "/")
		return catalogPageData{}, false
	}
	v := ctrl.Snapshot()
	base := viewdata.NewBaseVM(r, pageTitle, "/").WithView(v.IsMobile, ctrl.Hub())
	return newCatalogPageData(base, token, v), true
}
