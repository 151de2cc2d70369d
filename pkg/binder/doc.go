// Package binder decodes HTTP request data into typed request structs.
//
// Binders share the signature func(*http.Request, any) error so they can be
// chained by handler.Wrap. Three sources are supported:
//
//   - JSON bodies (strict decoding, 1MB limit, empty body is optional)
//   - query parameters, read from `query:"name"` struct tags
//   - chi path parameters, read from `path:"name"` struct tags
//
// A binder that finds nothing to do returns ErrBinderNotApplicable, which the
// handler layer treats as a skip rather than a failure:
//
//	type advanceRequest struct {
//		Name *string `json:"name"`
//	}
//
//	r.Post("/wizard/advance", handler.Wrap(advance,
//		handler.WithBinder[handler.Context, advanceRequest](binder.JSON()),
//	))
package binder
