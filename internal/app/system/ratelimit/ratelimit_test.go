package ratelimit_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/devcatalog/internal/app/system/ratelimit"
)

func TestAllow_WindowResets(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := ratelimit.New(2, time.Minute)
	l.SetClock(func() time.Time { return now })

	if !l.Allow("a") || !l.Allow("a") {
		t.Fatal("first two requests should pass")
	}
	if l.Allow("a") {
		t.Fatal("third request in the window should be limited")
	}
	if !l.Allow("b") {
		t.Fatal("keys are limited independently")
	}
	if got := l.RetryAfter("a"); got != time.Minute {
		t.Errorf("RetryAfter = %v, want 1m", got)
	}

	now = now.Add(61 * time.Second)
	if !l.Allow("a") {
		t.Fatal("request after the window should pass")
	}
}

func TestSweep_DropsExpired(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := ratelimit.New(1, time.Minute)
	l.SetClock(func() time.Time { return now })

	l.Allow("a")
	l.Allow("b")
	if n := l.Sweep(); n != 0 {
		t.Errorf("Sweep before expiry = %d, want 0", n)
	}
	now = now.Add(2 * time.Minute)
	if n := l.Sweep(); n != 2 {
		t.Errorf("Sweep after expiry = %d, want 2", n)
	}
}

func TestMiddleware_Returns429(t *testing.T) {
	l := ratelimit.New(1, time.Minute)
	h := l.Middleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request: got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: got %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("missing Retry-After header")
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name   string
		xff    string
		xri    string
		remote string
		want   string
	}{
		{"forwarded for", "203.0.113.5, 10.0.0.1", "", "10.0.0.1:80", "203.0.113.5"},
		{"real ip", "", "198.51.100.7", "10.0.0.1:80", "198.51.100.7"},
		{"remote addr", "", "", "192.0.2.1:5555", "192.0.2.1"},
		{"remote without port", "", "", "192.0.2.1", "192.0.2.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remote
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				req.Header.Set("X-Real-IP", tt.xri)
			}
			if got := ratelimit.ClientIP(req); got != tt.want {
				t.Errorf("ClientIP = %q, want %q", got, tt.want)
			}
		})
	}
}
