// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/devcatalog/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// Default user-facing messages.
const (
	msgNotFound    = "No encontramos lo que buscas."
	msgServerError = "Algo salió mal. Inténtalo de nuevo más tarde."
	msgBadRequest  = "La solicitud no es válida."
	msgTooMany     = "Demasiadas solicitudes. Espera un momento y vuelve a intentarlo."
)

// RenderNotFound shows the 404 page. Empty msg or backURL use defaults.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	renderStatus(w, r, http.StatusNotFound, "No encontrado", msg, msgNotFound, backURL)
}

// RenderServerError shows the 500 page.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	renderStatus(w, r, http.StatusInternalServerError, "Error", msg, msgServerError, backURL)
}

// RenderBadRequest shows the 400 page.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	renderStatus(w, r, http.StatusBadRequest, "Solicitud inválida", msg, msgBadRequest, backURL)
}

func renderStatus(w http.ResponseWriter, r *http.Request, status int, title, msg, fallback, backURL string) {
	if msg == "" {
		msg = fallback
	}
	if backURL == "" {
		backURL = "/"
	}
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, title, backURL),
		Status:  status,
		Message: msg,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	sw := &statusWriter{ResponseWriter: w, status: status}
	defer sw.flush()
	if isHTMX(r) {
		templates.RenderSnippet(sw, "error_snippet", data)
		return
	}
	templates.Render(sw, r, "error_page", data)
}

// statusWriter holds the status until the first body write. A renderer
// that fails before writing may replace it with its own status.
type statusWriter struct {
	http.ResponseWriter
	status int
	sent   bool
}

func (sw *statusWriter) WriteHeader(code int) {
	if !sw.sent {
		sw.status = code
	}
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	sw.flush()
	return sw.ResponseWriter.Write(b)
}

func (sw *statusWriter) flush() {
	if sw.sent {
		return
	}
	sw.sent = true
	sw.ResponseWriter.WriteHeader(sw.status)
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// RenderTooManyRequests shows the 429 page.
func RenderTooManyRequests(w http.ResponseWriter, r *http.Request) {
	renderStatus(w, r, http.StatusTooManyRequests, "Demasiadas solicitudes", "", msgTooMany, "/")
}
