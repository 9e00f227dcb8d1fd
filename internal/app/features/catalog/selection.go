// internal/app/features/catalog/selection.go
package catalog

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/devcatalog/internal/app/system/timeouts"
	"github.com/dalemusser/devcatalog/internal/app/system/viewport"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| POST /select – user picks a category                                        |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(strings.TrimSpace(r.FormValue("index")))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "select: bad index", err, "Categoría no válida.", "/")
		return
	}

	id, ctrl := h.view(r)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Fetch(), h.Log, "catalog select fetch")
	defer cancel()

	nav := &pushNavigator{}
	if err := ctrl.UpdateState(ctx, index, nav); err != nil {
		h.Log.Warn("select category failed",
			zap.Int("index", index),
			zap.String("view_id", id),
			zap.Error(err))
	}

	if isHTMX(r) {
		if nav.path != "" {
			w.Header().Set("HX-Push-Url", nav.path)
		}
		h.renderPanel(w, r, id, ctrl)
		return
	}
	if nav.path != "" {
		http.Redirect(w, r, nav.path, http.StatusSeeOther)
		return
	}
	h.renderPage(w, r, id, ctrl)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /resize – viewport width changed                                       |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleResize(w http.ResponseWriter, r *http.Request) {
	width := viewport.WidthFromRequest(r)
	id, ctrl := h.view(r)

	// A missing or unparsable width leaves the layout and session alone.
	if width > 0 {
		ctrl.Resize(width)
		if err := h.Sessions.SaveWidth(w, r, width); err != nil {
			h.Log.Warn("save viewport width failed", zap.Int("width", width), zap.Error(err))
		}
	}

	if isHTMX(r) {
		h.renderPanel(w, r, id, ctrl)
		return
	}
	http.Redirect(w, r, httpnav.ResolveBackURL(r, "/"), http.StatusSeeOther)
}
