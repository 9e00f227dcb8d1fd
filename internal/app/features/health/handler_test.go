package health_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/devcatalog/internal/app/features/health"
	"github.com/dalemusser/devcatalog/internal/testutil"
	"go.uber.org/zap"
)

type response struct {
	Status    string `json:"status"`
	Source    string `json:"source"`
	Resources int    `json:"resources"`
	Message   string `json:"message"`
	Error     string `json:"error"`
}

func TestServe_SourceAvailable(t *testing.T) {
	handler := health.NewHandler(testutil.NewFakeSource(), zap.NewNop())

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	handler.Serve(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	// Verify content type
	contentType := rec.Header().Get("Content-Type")
	if contentType != "application/json" {
		t.Errorf("Content-Type: got %q, want %q", contentType, "application/json")
	}

	var resp response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("status: got %q, want %q", resp.Status, "ok")
	}
	if resp.Source != "available" {
		t.Errorf("source: got %q, want %q", resp.Source, "available")
	}
	if resp.Resources != len(testutil.SampleResources()) {
		t.Errorf("resources: got %d, want %d", resp.Resources, len(testutil.SampleResources()))
	}
}

func TestServe_SourceUnavailable(t *testing.T) {
	src := testutil.NewFakeSource()
	src.SetErr(errors.New("connection refused"))
	handler := health.NewHandler(src, zap.NewNop())

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	handler.Serve(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}

	var resp response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Status != "error" || resp.Source != "unavailable" {
		t.Errorf("got status %q source %q, want error/unavailable", resp.Status, resp.Source)
	}
	if resp.Error != "connection refused" {
		t.Errorf("error: got %q", resp.Error)
	}
}

func TestRoutes_MountsServe(t *testing.T) {
	router := health.Routes(health.NewHandler(testutil.NewFakeSource(), zap.NewNop()))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}
