package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/starfederation/datastar-go/datastar"
)

// Context is the request's context.Context plus access to the HTTP pair.
// SSE is non-nil only for datastar requests.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	SSE() *datastar.ServerSentEventGenerator
}

// NewContext builds the default Context. The datastar generator is created
// lazily on first SSE call so non-streaming handlers can still set a status.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &httpContext{w: w, r: r}
}

type httpContext struct {
	w   http.ResponseWriter
	r   *http.Request
	sse *datastar.ServerSentEventGenerator
}

func (c *httpContext) Request() *http.Request { return c.r }

func (c *httpContext) ResponseWriter() http.ResponseWriter { return c.w }

func (c *httpContext) SSE() *datastar.ServerSentEventGenerator {
	if c.sse == nil && IsDataStar(c.r) {
		c.sse = NewSSE(c.w, c.r)
	}
	return c.sse
}

func (c *httpContext) Deadline() (time.Time, bool) { return c.r.Context().Deadline() }

func (c *httpContext) Done() <-chan struct{} { return c.r.Context().Done() }

func (c *httpContext) Err() error { return c.r.Context().Err() }

func (c *httpContext) Value(key any) any { return c.r.Context().Value(key) }
