package binder

import "net/http"

// Query binds URL query parameters using `query` struct tags.
// Missing parameters leave fields at their zero value.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		values := r.URL.Query()
		if len(values) == 0 {
			return ErrBinderNotApplicable
		}
		return bindToStruct(v, "query", values, ErrFailedToParseQuery)
	}
}
