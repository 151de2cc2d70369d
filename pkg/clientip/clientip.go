// Package clientip resolves the caller's address behind proxies and makes
// it available to handlers and log records.
package clientip

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
)

// DefaultHeaders are consulted in order before falling back to RemoteAddr.
// X-Forwarded-For may hold a chain; the first valid entry wins.
var DefaultHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

// Resolve returns the normalized client IP of r, or "" when none is valid.
func Resolve(r *http.Request, headers ...string) string {
	if len(headers) == 0 {
		headers = DefaultHeaders
	}
	for _, h := range headers {
		for candidate := range strings.SplitSeq(r.Header.Get(h), ",") {
			if ip := normalize(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return normalize(r.RemoteAddr)
	}
	return normalize(host)
}

func normalize(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}

type contextKey struct{}

func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// Middleware stores the resolved client IP in the request context. With no
// headers given, DefaultHeaders are trusted.
func Middleware(headers ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := Resolve(r, headers...)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), ip)))
		})
	}
}

// LoggerExtractor adds client_ip to log records.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ip := FromContext(ctx); ip != "" {
			return slog.String("client_ip", ip), true
		}
		return slog.Attr{}, false
	}
}
