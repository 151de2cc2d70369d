package handler

import "net/http"

// SSEHandler drives a long-lived event stream until it returns or the
// request context is done.
type SSEHandler func(ctx StreamContext) error

type sseResponse struct {
	handler SSEHandler
}

func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "sse_requires_datastar")
	}

	base := NewContext(w, r)
	sse := base.SSE()
	if sse == nil {
		return ErrSSENotInitialized
	}
	return s.handler(&streamContext{Context: base, sse: sse})
}

// SSE returns a Response that upgrades a datastar request to an event stream.
func SSE(handler SSEHandler) Response {
	return sseResponse{handler: handler}
}
