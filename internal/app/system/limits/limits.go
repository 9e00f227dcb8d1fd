// internal/app/system/limits/limits.go
package limits

import "time"

// Request body size limits.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxFormSize caps catalog form posts (select, resize, alert confirm).
	MaxFormSize = 64 << 10 // 64 KB
)

// Page-load limits. Every full page load registers a new catalog view.
const (
	// PageLoadsPerWindow is how many catalog pages one client may open per
	// PageLoadWindow.
	PageLoadsPerWindow = 120

	PageLoadWindow = time.Minute
)
