package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// routeLabel returns the chi route pattern that matched r, such as
// "/projects/{id}/", so entity ids do not leak into span names and metric
// labels. Outside a chi router, or before routing has happened, it falls
// back to the raw path.
func routeLabel(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
