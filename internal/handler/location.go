package handler

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkordes/tabi-shiori/internal/bridge"
	"github.com/pkordes/tabi-shiori/internal/handler/gen"
)

type requestURLKey struct{}

// captureRequestURL is a strict middleware that hands the request URL to
// the handlers, which otherwise only see the bound request object.
func captureRequestURL(f gen.StrictHandlerFunc, _ string) gen.StrictHandlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, request any) (any, error) {
		return f(context.WithValue(ctx, requestURLKey{}, r.URL), w, r, request)
	}
}

// requestLocation presents the current request as the page URL a bridge
// reads from and writes to: the public origin plus the request's raw query.
func (s *Server) requestLocation(ctx context.Context) *bridge.MemoryLocation {
	href := s.origin + "/"
	if u, ok := ctx.Value(requestURLKey{}).(*url.URL); ok && u.RawQuery != "" {
		href += "?" + u.RawQuery
	}
	return bridge.NewMemoryLocation(href)
}
