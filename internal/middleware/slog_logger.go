// Package middleware provides HTTP middleware for the trip API server.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewSlogLogger returns a middleware that logs each request as one structured
// line via log. Besides method, path, status and duration it records the
// size of the encoded trip in the query and of the response body, since
// those grow with the trip and are what runs into URL length limits.
//
// The query itself is never logged: it is the user's whole itinerary.
// Wire it after chimiddleware.RequestID so the request ID is available.
func NewSlogLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			attrs := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", chimiddleware.GetReqID(r.Context()),
				"response_size", humanize.Bytes(uint64(ww.BytesWritten())),
			}
			if data := r.URL.Query().Get("data"); data != "" {
				attrs = append(attrs, "data_size", humanize.Bytes(uint64(len(data))))
			}
			log.InfoContext(r.Context(), "request", attrs...)
		})
	}
}
