package api

import (
	"context"
	"kamion-client/internal/platform/obs"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// statusWriter captures the final HTTP status code and number of bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Record implicit 200 responses when handlers write without calling WriteHeader.
func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// loggingMiddleware propagates the caller's X-Request-ID (or mints one)
// and logs method, path, status, size and duration of every request.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ctx := r.Context()
		if id := r.Header.Get("X-Request-ID"); id != "" {
			ctx = context.WithValue(ctx, obs.RequestIDKey, id)
		}
		ctx = obs.WithRequestID(ctx)
		w.Header().Set("X-Request-ID", obs.RequestID(ctx))

		sw := &statusWriter{
			ResponseWriter: w,
			status:         0,
		}

		next.ServeHTTP(sw, r.WithContext(ctx))

		zap.L().Info("request",
			zap.String("req_id", obs.RequestID(ctx)),
			zap.String("method", r.Method),
			zap.String("path", r.URL.RequestURI()),
			zap.Int("status", sw.status),
			zap.Int("bytes", sw.bytes),
			zap.Duration("dur", time.Since(start)),
		)
	})
}
