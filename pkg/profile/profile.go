package profile

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("profile.not_found")

type contextKey struct{}

func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the id set by Middleware, or "".
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

type Option func(*options)

type options struct {
	transport Transport
	issue     Transport
	generate  func() string
}

// WithTransport replaces the lookup chain.
func WithTransport(t Transport) Option {
	return func(o *options) {
		if t != nil {
			o.transport = t
		}
	}
}

// WithIssuer sets where newly generated ids are written.
func WithIssuer(t Transport) Option {
	return func(o *options) {
		if t != nil {
			o.issue = t
		}
	}
}

// WithGenerator overrides the id generator.
func WithGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.generate = fn
		}
	}
}

// WithSecureCookie marks the default cookie Secure.
func WithSecureCookie(secure bool) Option {
	return func(o *options) {
		cookie := NewCookieTransport(DefaultCookieName, DefaultCookieTTL, secure)
		o.transport = NewCompositeTransport(NewHeaderTransport(DefaultHeader), cookie)
		o.issue = cookie
	}
}

// Middleware resolves the profile id and stores it in the request context.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	cookie := NewCookieTransport(DefaultCookieName, DefaultCookieTTL, false)
	o := &options{
		transport: NewCompositeTransport(NewHeaderTransport(DefaultHeader), cookie),
		issue:     cookie,
		generate:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := o.transport.ID(r)
			if err != nil {
				id = o.generate()
				o.issue.SetID(w, id)
			}
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
		})
	}
}

// LoggerExtractor adds profile_id to log records.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := FromContext(ctx); id != "" {
			return slog.String("profile_id", id), true
		}
		return slog.Attr{}, false
	}
}
