package httpserver

import (
	"log/slog"
	"time"
)

type Option func(*config)

// WithAddr ignores an empty address.
func WithAddr(addr string) Option {
	return func(c *config) {
		if addr != "" {
			c.addr = addr
		}
	}
}

// WithReadTimeout, WithWriteTimeout and WithIdleTimeout treat zero as "no limit".
func WithReadTimeout(d time.Duration) Option {
	return func(c *config) { c.readTimeout = max(d, 0) }
}

// WithWriteTimeout stays zero for servers that hold SSE streams open.
func WithWriteTimeout(d time.Duration) Option {
	return func(c *config) { c.writeTimeout = max(d, 0) }
}

func WithIdleTimeout(d time.Duration) Option {
	return func(c *config) { c.idleTimeout = max(d, 0) }
}

func WithShutdownTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.shutdownTimeout = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
