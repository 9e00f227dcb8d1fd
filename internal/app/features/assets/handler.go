package assets

import (
	"encoding/json"
	"net/http"

	catalogstore "github.com/dalemusser/devcatalog/internal/app/store/catalog"
	"github.com/dalemusser/devcatalog/internal/app/system/timeouts"
	"github.com/dalemusser/devcatalog/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the resource asset as JSON.
type Handler struct {
	Source catalogstore.Source
	Log    *zap.Logger
}

// NewHandler constructs an assets Handler over src.
func NewHandler(src catalogstore.Source, logger *zap.Logger) *Handler {
	return &Handler{Source: src, Log: logger}
}

// ServeData handles GET /assets/data.json.
//
// The optional ?category= query narrows the list to one category; without
// it the whole asset is returned. The response is always a JSON array.
func (h *Handler) ServeData(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get(catalogstore.CategoryParam)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "asset read")
	defer cancel()

	data, err := h.Source.Fetch(ctx, category)
	if err != nil {
		h.Log.Error("asset read failed", zap.String("category", category), zap.Error(err))
		http.Error(w, "asset unavailable", http.StatusInternalServerError)
		return
	}
	if data == nil {
		data = []models.Resource{}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Log.Warn("asset encode failed", zap.Error(err))
	}
}
