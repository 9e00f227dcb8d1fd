// Package timeouts centralizes the deadlines used by handlers when they
// talk to the catalog data source.
//
//   - Ping: health checks
//   - Short: cheap reads (single resource lookups)
//   - Fetch: category fetches that drive a page render
//
// Values start at the defaults and may be overridden once at startup with
// Configure or ConfigureFromEnv.
package timeouts

import (
	"context"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultPing  = 2 * time.Second
	DefaultShort = 5 * time.Second
	DefaultFetch = 10 * time.Second
)

var (
	mu    sync.RWMutex
	ping  = DefaultPing
	short = DefaultShort
	fetch = DefaultFetch
)

// Ping returns the health-check timeout.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Short returns the timeout for single lookups.
func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

// Fetch returns the timeout for a category fetch.
func Fetch() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return fetch
}

// Config holds timeout values. Zero fields keep the current value.
type Config struct {
	Ping  time.Duration
	Short time.Duration
	Fetch time.Duration
}

// Configure applies the non-zero fields of cfg.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Short > 0 {
		short = cfg.Short
	}
	if cfg.Fetch > 0 {
		fetch = cfg.Fetch
	}
}

// Reset restores the defaults. Tests use it after Configure.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping, short, fetch = DefaultPing, DefaultShort, DefaultFetch
}

// ConfigureFromEnv reads TIMEOUT_PING, TIMEOUT_SHORT and TIMEOUT_FETCH
// (Go duration strings). Invalid or non-positive values are skipped. It
// returns how many values were applied.
func ConfigureFromEnv() int {
	var cfg Config
	n := 0
	for _, e := range []struct {
		key string
		dst *time.Duration
	}{
		{"TIMEOUT_PING", &cfg.Ping},
		{"TIMEOUT_SHORT", &cfg.Short},
		{"TIMEOUT_FETCH", &cfg.Fetch},
	} {
		v := os.Getenv(e.key)
		if v == "" {
			continue
		}
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			*e.dst = d
			n++
		}
	}
	Configure(cfg)
	return n
}

// Current returns the active values.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{Ping: ping, Short: short, Fetch: fetch}
}

// WithTimeout is context.WithTimeout whose cancel func logs a warning when
// the deadline was hit.
//
//	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Fetch(), h.Log, "catalog fetch")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
