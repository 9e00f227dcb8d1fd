// internal/app/features/catalog/handler.go
package catalog

import (
	"errors"
	"net/http"

	errorsfeature "github.com/dalemusser/devcatalog/internal/app/features/errors"
	catalogstore "github.com/dalemusser/devcatalog/internal/app/store/catalog"
	"github.com/dalemusser/devcatalog/internal/app/system/catalogview"
	"github.com/dalemusser/devcatalog/internal/app/system/ratelimit"
	"github.com/dalemusser/devcatalog/internal/app/system/viewport"
	"github.com/dalemusser/devcatalog/internal/app/system/viewsession"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/gorilla/securecookie"
	"go.uber.org/zap"
)

// RenderFunc renders a full page template.
type RenderFunc func(w http.ResponseWriter, r *http.Request, name string, data any)

// SnippetFunc renders a partial template for HTMX swaps.
type SnippetFunc func(w http.ResponseWriter, name string, data any)

// Handler serves the catalog pages and the HTMX endpoints that drive a
// view's controller.
type Handler struct {
	Store    *catalogstore.Store
	Views    *catalogview.Registry
	Sessions *viewsession.Manager
	ErrLog   *errorsfeature.ErrorLogger
	Log      *zap.Logger

	// PageLimiter, when set, caps full page loads per client.
	PageLimiter *ratelimit.Limiter

	// Render and Snippet default to the pantry template engine.
	Render  RenderFunc
	Snippet SnippetFunc
}

// NewHandler constructs a catalog Handler.
func NewHandler(store *catalogstore.Store, views *catalogview.Registry, sessions *viewsession.Manager, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Store:    store,
		Views:    views,
		Sessions: sessions,
		ErrLog:   errLog,
		Log:      logger,
		Render: func(w http.ResponseWriter, r *http.Request, name string, data any) {
			templates.Render(w, r, name, data)
		},
		Snippet: func(w http.ResponseWriter, name string, data any) {
			templates.RenderSnippet(w, name, data)
		},
	}
}

// width is the viewport width reported by the request, falling back to the
// width remembered in the session.
func (h *Handler) width(r *http.Request) int {
	if w := viewport.WidthFromRequest(r); w > 0 {
		return w
	}
	return h.Sessions.Width(r)
}

// newView registers a controller for a fresh page load.
func (h *Handler) newView(r *http.Request) (string, *catalogview.Controller) {
	return h.Views.Create(h.width(r))
}

// view finds the controller a request belongs to. A missing, forged or
// expired token starts a new view.
func (h *Handler) view(r *http.Request) (string, *catalogview.Controller) {
	viewID, ctrl, created := h.Views.Lookup(h.viewID(r), h.width(r))
	if created {
		h.Log.Debug("catalog view created", zap.String("view_id", viewID))
	}
	return viewID, ctrl
}

// existingView resolves the request's token to a registered controller
// without creating one.
func (h *Handler) existingView(r *http.Request) (string, *catalogview.Controller, bool) {
	id := h.viewID(r)
	if id == "" {
		return "", nil, false
	}
	ctrl, ok := h.Views.Get(id)
	return id, ctrl, ok
}

// viewID decodes the request's view token, or returns "".
func (h *Handler) viewID(r *http.Request) string {
	id, err := h.Sessions.ViewID(r)
	if err != nil && !errors.Is(err, viewsession.ErrNoToken) {
		if scErr, ok := err.(securecookie.Error); ok && scErr.IsDecode() {
			h.Log.Debug("view token rejected", zap.Error(err))
		} else {
			h.Log.Warn("view token error", zap.Error(err))
		}
	}
	return id
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// pushNavigator records the route the controller asks for.
type pushNavigator struct {
	path string
}

func (n *pushNavigator) Navigate(path string) { n.path = path }
