// Package handler adapts typed handler functions to net/http.
//
// A HandlerFunc receives a Context and a bound request value and returns a
// Response. Wrap turns it into an http.HandlerFunc, running the configured
// binders first and routing every failure through one ErrorHandler:
//
//	type listRequest struct {
//		Query string `query:"q"`
//	}
//
//	func listUsers(ctx handler.Context, req listRequest) handler.Response {
//		listing, err := users.List(ctx, profileID, req.Query)
//		if err != nil {
//			return handler.JSONError(handler.ErrBadGateway)
//		}
//		return handler.JSON(listing.Users)
//	}
//
//	r.Get("/users", handler.Wrap(listUsers,
//		handler.WithBinder[handler.Context, listRequest](binder.Query()),
//	))
//
// # Responses
//
// JSON and JSONError write the {data, meta, error} envelope. Errors are
// mapped to status codes: validator.ValidationErrors become 422 with
// per-field details, HTTPError carries its own code, binder failures are
// 400 or 415 and anything else is 500.
//
// Templ renders a templ component as HTML, or as a datastar element patch
// when the request came from datastar. SSE upgrades the request to a
// long-lived event stream and hands the handler a StreamContext for pushing
// components and signals.
package handler
