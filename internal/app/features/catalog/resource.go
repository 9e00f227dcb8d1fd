// internal/app/features/catalog/resource.go
package catalog

import (
	"net/http"
	"net/url"
	"sort"

	errorsfeature "github.com/dalemusser/devcatalog/internal/app/features/errors"
	catalogstore "github.com/dalemusser/devcatalog/internal/app/store/catalog"
	"github.com/dalemusser/devcatalog/internal/app/system/catalogview"
	"github.com/dalemusser/devcatalog/internal/app/system/notify"
	"github.com/dalemusser/devcatalog/internal/app/system/timeouts"
	"github.com/dalemusser/devcatalog/internal/app/system/viewdata"
	"github.com/dalemusser/devcatalog/internal/app/system/viewport"
	"github.com/dalemusser/devcatalog/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| GET /recurso/{name} – one resource and its neighbours                       |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeResource(w http.ResponseWriter, r *http.Request) {
	// chi hands back the raw segment only when the path needed RawPath.
	name := chi.URLParam(r, "name")
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(name)
		if err != nil {
			errorsfeature.RenderNotFound(w, r, "", "/")
			return
		}
		name = unescaped
	}
	if name == "" {
		errorsfeature.RenderNotFound(w, r, "", "/")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Fetch(), h.Log, "catalog resource fetch")
	defer cancel()

	matches, err := h.Store.FetchByName(ctx, name)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "fetch resource by name failed", err, "No se pudieron cargar los recursos.", "/")
		return
	}
	if len(matches) == 0 {
		errorsfeature.RenderNotFound(w, r, "Ese recurso no existe.", "/")
		return
	}
	res := matches[0]

	// Only a page opened from a live view shares the resource on its hub.
	// A bare link renders standalone and registers nothing.
	var (
		token    string
		isMobile = viewport.IsMobile(h.width(r))
		hub      *notify.Hub
	)
	if id, ctrl, ok := h.existingView(r); ok {
		ctrl.Hub().SetData(res)
		token, err = h.Sessions.Token(id)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "sign view token failed", err, "", "/")
			return
		}
		isMobile = ctrl.IsMobile()
		hub = ctrl.Hub()
	}

	related, err := h.Store.FetchByCategory(ctx, res.Category)
	if err != nil {
		h.Log.Warn("related resources unavailable",
			zap.String("category", res.Category),
			zap.Error(err))
		related = nil
	}

	categoryURL := "/"
	if res.Category != "" {
		categoryURL = catalogview.CategoryPath(res.Category)
	}

	base := viewdata.NewBaseVM(r, res.Name, categoryURL).WithView(isMobile, hub)
	data := resourcePageData{
		BaseVM:      base,
		ViewToken:   token,
		Resource:    newResourceItem(res, token),
		Category:    catalogstore.MapCategory(res.Category),
		CategoryURL: categoryURL,
		Subcategory: h.Store.SubCategoryName(res.Subcategory),
	}
	for _, o := range relatedTo(res, related) {
		data.Related = append(data.Related, newResourceItem(o, token))
	}

	h.Render(w, r, "resource_page", data)
}

// relatedTo returns the other resources sharing res's subcategory, ordered
// by folded name.
func relatedTo(res models.Resource, pool []models.Resource) []models.Resource {
	var out []models.Resource
	for _, o := range pool {
		if o.Name == res.Name || o.Subcategory != res.Subcategory {
			continue
		}
		out = append(out, o)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return text.Fold(out[i].Name) < text.Fold(out[j].Name)
	})
	return out
}
