// Package viewport decides the responsive layout from a reported viewport
// width.
package viewport

import (
	"net/http"
	"strconv"
	"strings"
)

// Breakpoint is the width below which the mobile layout is used.
const Breakpoint = 768

// ClientHintHeader is the client hint carrying the viewport width.
const ClientHintHeader = "Sec-CH-Viewport-Width"

// IsMobile reports whether width is below the breakpoint. Unknown widths
// (<= 0) are treated as desktop.
func IsMobile(width int) bool {
	return width > 0 && width < Breakpoint
}

// WidthFromRequest reads the viewport width from the "width" form/query
// value, then the client hint header. It returns 0 when neither is usable.
func WidthFromRequest(r *http.Request) int {
	if w := parseWidth(r.FormValue("width")); w > 0 {
		return w
	}
	return parseWidth(r.Header.Get(ClientHintHeader))
}

func parseWidth(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	// Client hints may send fractional CSS pixels.
	if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 && f < 1e6 {
		return int(f)
	}
	return 0
}
