package binder

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Path binds chi route parameters using `path` struct tags.
func Path() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		rctx := chi.RouteContext(r.Context())
		if rctx == nil || len(rctx.URLParams.Keys) == 0 {
			return ErrBinderNotApplicable
		}

		values := make(map[string][]string, len(rctx.URLParams.Keys))
		for i, key := range rctx.URLParams.Keys {
			if key == "*" || i >= len(rctx.URLParams.Values) {
				continue
			}
			values[key] = append(values[key], rctx.URLParams.Values[i])
		}
		return bindToStruct(v, "path", values, ErrFailedToParsePath)
	}
}
