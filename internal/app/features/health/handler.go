package health

import (
	"context"
	"encoding/json"
	"net/http"

	catalogstore "github.com/dalemusser/devcatalog/internal/app/store/catalog"
	"github.com/dalemusser/devcatalog/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Source catalogstore.Source
	Log    *zap.Logger
}

// NewHandler constructs a health Handler over the catalog data source.
func NewHandler(src catalogstore.Source, logger *zap.Logger) *Handler {
	return &Handler{
		Source: src,
		Log:    logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status    string `json:"status"`
	Source    string `json:"source"`
	Resources int    `json:"resources"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "source":"available", "resources":42 }
//
// On source failure: 503 and
//
//	{ "status":"error", "source":"unavailable", "message":"Data source unavailable", "error":"…"}
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status: "ok",
		Source: "available",
	}

	data, err := h.Source.Fetch(ctx, "")
	if err != nil {
		h.Log.Error("health-check: data source fetch failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Source = "unavailable"
		resp.Message = "Data source unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}
	resp.Resources = len(data)

	_ = json.NewEncoder(w).Encode(resp)
}
