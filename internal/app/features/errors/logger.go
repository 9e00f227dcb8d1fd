package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger logs a failure with request context and renders the matching
// error page in one call, so handlers can bail out with a single line.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger wraps logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

// LogServerError logs err at error level and renders a 500 page.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.Log.Error(logMsg, append(requestFields(r), zap.Error(err))...)
	RenderServerError(w, r, userMsg, backURL)
}

// HTMXLogServerError is LogServerError for HTMX requests. It renders the
// error snippet into the region named by HX-Target.
func (e *ErrorLogger) HTMXLogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.Log.Error(logMsg, append(requestFields(r), zap.Error(err))...)
	if isHTMX(r) {
		w.Header().Set("HX-Reswap", "innerHTML")
	}
	RenderServerError(w, r, userMsg, backURL)
}

// LogBadRequest logs at warn level and renders a 400 page.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.Log.Warn(logMsg, append(requestFields(r), zap.Error(err))...)
	RenderBadRequest(w, r, userMsg, backURL)
}

func requestFields(r *http.Request) []zap.Field {
	return []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
}
