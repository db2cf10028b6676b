// Package handler implements the HTTP adapter for trip links.
// The server keeps no state between requests: every request carries its trip
// in the "data" query parameter, and every response carries the updated
// trip back as JSON, encoded data and a share URL.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/tabi-shiori/internal/handler/gen"
	"github.com/pkordes/tabi-shiori/internal/middleware"
	"github.com/pkordes/tabi-shiori/spec"
)

// Server holds the dependencies shared by all handlers.
// Methods are split into domain-specific files (health.go, trip.go, export.go).
type Server struct {
	origin  string
	maxBody int64
	log     *slog.Logger
}

// compile-time check: Server must satisfy the generated strict interface.
var _ gen.StrictServerInterface = (*Server)(nil)

// NewServer constructs the Server. origin is the public origin share links
// are built on; maxBody caps request bodies.
func NewServer(origin string, maxBody int64, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{origin: origin, maxBody: maxBody, log: log}
}

// Routes returns the router for every endpoint. gen.NewStrictHandlerWithOptions
// adapts the Server to the ServerInterface the generated chi router expects.
// Cross-cutting middleware (request IDs, logging, CORS) is wired by the caller.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/openapi.yaml", serveOpenAPI)

	strict := gen.NewStrictHandlerWithOptions(s,
		[]gen.StrictMiddlewareFunc{captureRequestURL},
		gen.StrictHTTPServerOptions{
			RequestErrorHandlerFunc:  requestError,
			ResponseErrorHandlerFunc: s.responseError,
		})

	return gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []gen.MiddlewareFunc{middleware.NewMaxBodySizeHandler(s.maxBody)},
		ErrorHandlerFunc: requestError,
	})
}

func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(spec.OpenAPI)
}
