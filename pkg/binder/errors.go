package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrFailedToParseQuery   = errors.New("failed to parse query parameters")
	ErrFailedToParsePath    = errors.New("failed to parse path parameters")
	ErrMissingContentType   = errors.New("missing content type")

	// ErrBinderNotApplicable reports that a request carries nothing for this binder.
	// handler.Wrap skips binders that return it.
	ErrBinderNotApplicable = errors.New("binder not applicable")
)
