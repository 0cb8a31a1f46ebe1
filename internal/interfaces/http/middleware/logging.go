package middleware

import (
	"net/http"
	"time"

	"github.com/marksentry/marksentry/internal/infrastructure/monitoring/logging"
)

// Paths excluded from request logging to keep probe noise out of the logs.
var skipPaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
	"/metrics": {},
}

// wrappedResponseWriter captures the status code and bytes written.
type wrappedResponseWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int64
	wroteHeader  bool
}

func (w *wrappedResponseWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.statusCode = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *wrappedResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytesWritten += int64(n)
	return n, err
}

// RequestLogging logs one structured line per request: method, path, status,
// duration, bytes, request ID.  5xx responses log at error level, 4xx at
// warn.
func RequestLogging(log logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, skip := skipPaths[r.URL.Path]; skip {
				next.ServeHTTP(w, r)
				return
			}

			ww := &wrappedResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(ww, r)

			fields := []logging.Field{
				logging.String("method", r.Method),
				logging.String("path", r.URL.Path),
				logging.Int("status", ww.statusCode),
				logging.Duration("duration", time.Since(start)),
				logging.Int("bytes", int(ww.bytesWritten)),
				logging.String("request_id", ContextGetRequestID(r.Context())),
			}
			switch {
			case ww.statusCode >= 500:
				log.Error("request failed", fields...)
			case ww.statusCode >= 400:
				log.Warn("request rejected", fields...)
			default:
				log.Info("request served", fields...)
			}
		})
	}
}
