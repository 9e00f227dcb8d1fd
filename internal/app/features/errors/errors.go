// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/devcatalog/internal/app/system/viewdata"
)

// pageData is the view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Status  int
	Message string
}

// Handler is the errors feature handler.
// No backend needed; it just renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NotFound is mounted as the router's 404 handler.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	RenderNotFound(w, r, "", "/")
}
